package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gantt-chart-generator/internal/gantt"
	"gantt-chart-generator/internal/gantt/usecase"
	"gantt-chart-generator/pkg/log"
)

type renderOptions struct {
	format string
	out    string
}

func newRenderCommand(_ *globalOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <timeline.json|timeline.yaml|->",
		Short: "Validate a timeline file and render it",
		Long: `Render reads a timeline document (JSON or YAML, - for stdin), validates it
the same way model output is validated and writes it in the chosen format.
No language model is called.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatHTML, "Output format: html, json, yaml or text")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (default: stdout)")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts *renderOptions) error {
	format, err := parseOutputFormat(opts.format)
	if err != nil {
		return err
	}

	data, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read timeline: %w", err)
	}
	doc, err := decodeTimelineDocument(data)
	if err != nil {
		return err
	}

	uc := usecase.New(log.NewNop(), nil, usecase.Config{})
	out, err := uc.Render(cmd.Context(), gantt.RenderInput{Timeline: doc})
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(opts.out, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := writeTimeline(w, format, out.Timeline, out.HTML); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}
