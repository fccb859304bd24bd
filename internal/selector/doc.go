// Package selector implements the interactive picker.
//
// A Session runs a synchronous loop over an explicit message model:
//
//	render State -> read key -> Translate -> Model.Update -> render ...
//
// Model.Update is pure: it maps a State and a Message to the next State and
// touches nothing else. All terminal I/O lives in Session.
package selector
