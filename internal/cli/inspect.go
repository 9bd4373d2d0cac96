package cli

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"licmerge/internal/app"
)

type inspectOptions struct {
	Output string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a previously written license output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Output, "output", "o", app.DefaultOutputPath, "License output file")
	bindFlags(cmd.Flags(), map[string]string{"output": "output"})
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Inspect(app.InspectRequest{
		OutputPath: resolveString(cmd, opts.Output, "output", "output"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("records: %d (%s", result.Count, result.Shape)
	if result.Indexed {
		fmt.Print(", indexed")
	}
	fmt.Println(")")
	width := 0
	for _, summary := range result.Licenses {
		if w := runewidth.StringWidth(string(summary.License)); w > width {
			width = w
		}
	}
	for _, summary := range result.Licenses {
		fmt.Printf("  %s  %d\n", runewidth.FillRight(string(summary.License), width), summary.Count)
	}
	return nil
}
