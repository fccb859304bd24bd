package loader

import (
	"os"
	"sort"
	"strings"
)

// EnvLoader reads configuration from environment variables.
//
// Mapped variables name a setting directly. Any other variable with the
// prefix is converted to a path by section: PREFIX_UI_ALT_SCREEN becomes
// "ui.alt_screen".
type EnvLoader struct {
	prefix  string
	mapping map[string]string
	lookup  func(string) (string, bool)
	environ func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix, which
// should include the trailing underscore.
func NewEnvLoader(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
		lookup:  os.LookupEnv,
		environ: os.Environ,
	}
}

// Setting is one value read from the environment.
type Setting struct {
	Env   string
	Path  string
	Value string
}

// Load returns the settings present in the environment, ordered by path.
// Empty values count as set.
func (l *EnvLoader) Load() []Setting {
	var settings []Setting
	for env, path := range l.mapping {
		if val, ok := l.lookup(env); ok {
			settings = append(settings, Setting{Env: env, Path: path, Value: val})
		}
	}

	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		if _, mapped := l.mapping[name]; mapped {
			continue
		}
		path := l.envToPath(name)
		if path == "" {
			continue
		}
		settings = append(settings, Setting{Env: name, Path: path, Value: value})
	}

	sort.Slice(settings, func(i, j int) bool {
		if settings[i].Path != settings[j].Path {
			return settings[i].Path < settings[j].Path
		}
		return settings[i].Env < settings[j].Env
	})
	return settings
}

// envToPath converts PREFIX_UI_ALT_SCREEN to ui.alt_screen. A variable
// without a setting part has no path.
func (l *EnvLoader) envToPath(env string) string {
	section, setting, ok := strings.Cut(strings.TrimPrefix(env, l.prefix), "_")
	if !ok || section == "" || setting == "" {
		return ""
	}
	return strings.ToLower(section) + "." + strings.ToLower(setting)
}
