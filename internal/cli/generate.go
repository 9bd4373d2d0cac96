package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"licmerge/internal/app"
)

type generateOptions struct {
	Input     string
	Output    string
	Known     string
	Templates string
	Notice    string
	Exclude   []string
	Force     bool
	List      bool
	Index     bool
}

func bindGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.Input, "input", "i", app.DefaultInputPath, "Dependency license inventory (JSON)")
	flags.StringVarP(&opts.Output, "output", "o", app.DefaultOutputPath, "Output file (JSON)")
	flags.StringVarP(&opts.Known, "known", "k", app.DefaultKnownPath, "Known license overrides (JSON or YAML)")
	flags.StringVar(&opts.Templates, "templates", "", "Directory with license templates (default: built-in)")
	flags.StringVar(&opts.Notice, "notice", "", "Also render a plain-text NOTICE file")
	flags.StringArrayVar(&opts.Exclude, "exclude", nil, "Glob pattern of dependency names to leave out (repeatable)")
	flags.BoolVar(&opts.Force, "force", false, "Write output even when issues remain")
	flags.BoolVar(&opts.List, "list", false, "Write an array instead of a keyed object")
	flags.BoolVar(&opts.Index, "index", false, "Add a sequential index to each record")

	bindFlags(flags, map[string]string{
		"input":     "input",
		"output":    "output",
		"known":     "known",
		"templates": "templates",
		"notice":    "notice",
		"exclude":   "exclude",
		"force":     "force",
		"list":      "list",
		"index":     "index",
	})
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Generate(cmd.Context(), app.GenerateRequest{
		InputPath:    resolveString(cmd, opts.Input, "input", "input"),
		OutputPath:   resolveString(cmd, opts.Output, "output", "output"),
		KnownPath:    resolveString(cmd, opts.Known, "known", "known"),
		TemplatesDir: resolveString(cmd, opts.Templates, "templates", "templates"),
		NoticePath:   resolveString(cmd, opts.Notice, "notice", "notice"),
		Exclude:      resolveStrings(cmd, opts.Exclude, "exclude", "exclude"),
		Force:        resolveBool(cmd, opts.Force, "force", "force"),
		List:         resolveBool(cmd, opts.List, "list", "list"),
		Index:        resolveBool(cmd, opts.Index, "index", "index"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d license record(s) to %s\n", result.Summary.Accepted, result.OutputPath)
	if result.NoticePath != "" {
		fmt.Printf("wrote notice to %s\n", result.NoticePath)
	}
	return nil
}

func newAppService() (app.Service, error) {
	return app.NewService()
}

// bindFlags binds viper keys to flag names.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		_ = viper.BindPFlag(key, flags.Lookup(name))
	}
}
