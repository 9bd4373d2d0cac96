package cli

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"licmerge/internal/app"
)

type checkOptions struct {
	Input     string
	Known     string
	Templates string
	Exclude   []string
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report license issues without writing any output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.Input, "input", "i", app.DefaultInputPath, "Dependency license inventory (JSON)")
	flags.StringVarP(&opts.Known, "known", "k", app.DefaultKnownPath, "Known license overrides (JSON or YAML)")
	flags.StringVar(&opts.Templates, "templates", "", "Directory with license templates (default: built-in)")
	flags.StringArrayVar(&opts.Exclude, "exclude", nil, "Glob pattern of dependency names to leave out (repeatable)")
	bindFlags(flags, map[string]string{
		"input":     "input",
		"known":     "known",
		"templates": "templates",
		"exclude":   "exclude",
	})
	return cmd
}

func runCheck(cmd *cobra.Command, opts checkOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Check(cmd.Context(), app.CheckRequest{
		InputPath:    resolveString(cmd, opts.Input, "input", "input"),
		KnownPath:    resolveString(cmd, opts.Known, "known", "known"),
		TemplatesDir: resolveString(cmd, opts.Templates, "templates", "templates"),
		Exclude:      resolveStrings(cmd, opts.Exclude, "exclude", "exclude"),
	})
	if err != nil && errbuilder.CodeOf(err) != errbuilder.CodeFailedPrecondition {
		return err
	}
	summary := result.Summary
	fmt.Printf("checked %d record(s): %d accepted, %d issue(s), %d private, %d excluded, %d ignored\n",
		summary.Total, summary.Accepted, summary.Errors, summary.Private, summary.Excluded, summary.Ignored)
	return err
}
