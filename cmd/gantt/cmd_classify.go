package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gantt-chart-generator/internal/gantt"
	"gantt-chart-generator/internal/gantt/usecase"
	"gantt-chart-generator/pkg/log"
)

type classifyOptions struct {
	docs   []string
	asJSON bool
}

func newClassifyCommand(global *globalOptions) *cobra.Command {
	opts := &classifyOptions{}

	cmd := &cobra.Command{
		Use:   "classify <instructions>",
		Short: "Show the time frame detected in instructions",
		Long: `Classify runs the time-frame heuristic used before every generation and
prints the chosen unit, interval count and the hint given to the model.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, global, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.docs, "doc", "d", nil, "Reference document path (repeatable)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the estimate as JSON")

	return cmd
}

func runClassify(cmd *cobra.Command, global *globalOptions, instructions string, opts *classifyOptions) error {
	var docs []string
	if len(opts.docs) > 0 {
		a, err := global.load()
		if err != nil {
			return err
		}
		if docs, err = a.readDocuments(cmd.Context(), opts.docs); err != nil {
			return err
		}
	}

	uc := usecase.New(log.NewNop(), nil, usecase.Config{})
	out := uc.Classify(cmd.Context(), gantt.ClassifyInput{Instructions: instructions, Documents: docs})

	w := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out.Estimate)
	}

	est := out.Estimate
	unit := string(est.Unit)
	if est.TotalIntervals != 1 {
		unit += "s"
	}
	qualifier := ""
	if est.Approximate {
		qualifier = ", approximate"
	}
	fmt.Fprintf(w, "%d %s (rule %s%s)\n", est.TotalIntervals, unit, est.Rule, qualifier)
	fmt.Fprintln(w, strings.TrimSpace(out.Hint))
	return nil
}
