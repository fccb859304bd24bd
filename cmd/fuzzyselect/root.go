package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/fuzzyselect/internal/app"
)

type rootOptions struct {
	app              app.Options
	margin           int
	filter           string
	exitZeroOnCancel bool
}

func newRootCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuzzyselect",
		Short: "Interactive fuzzy picker for lines read from stdin",
		Long: `fuzzyselect reads candidates from stdin, lets you narrow them down by
typing a fuzzy query and prints the chosen one to stdout.

The picker draws on the controlling terminal, so it works in pipelines:

  git branch --format '%(refname:short)' | fuzzyselect | xargs git checkout

Exit status is 0 when an item is selected, 1 when the picker is cancelled
or --filter finds nothing, and 2 on errors.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPicker(cmd, o)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("fuzzyselect %s\n  commit: %s\n  built:  %s\n", version, commit, date))

	f := cmd.Flags()
	f.StringVarP(&o.app.ConfigPath, "config", "c", "", "path to configuration file")
	f.StringVarP(&o.app.Format, "format", "f", "", "input format: lines, json or yaml")
	f.StringSliceVarP(&o.app.Properties, "property", "p", nil, "property path shown for structured input (repeatable)")
	f.StringVar(&o.app.Prompt, "prompt", "", "query prompt")
	f.StringVar(&o.app.Border, "border", "", "border style: none, single, double, rounded, thick or hidden")
	f.IntVar(&o.margin, "margin", 0, "blank cells around the picker")
	f.BoolVar(&o.app.NoAltScreen, "no-alt-screen", false, "draw inline instead of on the alternate screen")
	f.StringVar(&o.filter, "filter", "", "print matches for `query` without starting the picker")
	f.IntVar(&o.app.Limit, "limit", 0, "maximum number of --filter results (0 for all)")
	f.BoolVar(&o.exitZeroOnCancel, "exit-zero-on-cancel", false, "exit 0 when cancelled or nothing matches")
	f.StringVar(&o.app.LogFile, "log-file", "", "append debug log to this file")
	f.StringVar(&o.app.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	return cmd
}

func runPicker(cmd *cobra.Command, o *rootOptions) error {
	opts := o.app
	if cmd.Flags().Changed("margin") {
		opts.Margin = &o.margin
	}
	if cmd.Flags().Changed("filter") {
		opts.Filter = true
		opts.FilterQuery = o.filter
	}

	application, err := app.New(opts)
	if err != nil {
		return err
	}
	defer func() { _ = application.Shutdown() }()

	application.SetIO(cmd.InOrStdin(), cmd.OutOrStdout())
	return application.Run(cmd.Context())
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var o rootOptions
	cmd := newRootCmd(&o)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	code := app.ExitCode(err, o.exitZeroOnCancel)
	if code == app.ExitError {
		fmt.Fprintf(stderr, "fuzzyselect: %v\n", err)
	}
	return code
}
