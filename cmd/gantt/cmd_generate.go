package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"gantt-chart-generator/internal/gantt"
	"gantt-chart-generator/internal/gantt/usecase"
	"gantt-chart-generator/pkg/llmprovider"
	"gantt-chart-generator/pkg/log"
)

type generateOptions struct {
	instructions     string
	instructionsFile string
	docs             []string
	format           string
	out              string
	noReconcile      bool
}

func newGenerateCommand(global *globalOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [instructions]",
		Short: "Generate a Gantt chart with a language model",
		Long: `Generate a project timeline from instructions and reference documents.

Instructions come from the positional argument, --instructions or
--instructions-file. Reference documents (.txt, .md; .pdf and .docx are
listed by name only) are attached with --doc, which may be repeated.`,
		Example: `  gantt generate "18-month rollout of the billing platform" --doc notes.md -o chart.html
  gantt generate --instructions-file brief.txt --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.instructions = args[0]
			}
			return runGenerate(cmd, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.instructions, "instructions", "i", "", "Project instructions")
	cmd.Flags().StringVar(&opts.instructionsFile, "instructions-file", "", "Read instructions from a file (- for stdin)")
	cmd.Flags().StringArrayVarP(&opts.docs, "doc", "d", nil, "Reference document path (repeatable)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatHTML, "Output format: html, json, yaml or text")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.noReconcile, "no-reconcile", false, "Keep the model's axis even when the instructions state a different time frame")

	return cmd
}

func runGenerate(cmd *cobra.Command, global *globalOptions, opts *generateOptions) error {
	format, err := parseOutputFormat(opts.format)
	if err != nil {
		return err
	}

	instructions := opts.instructions
	if opts.instructionsFile != "" {
		data, err := readInput(opts.instructionsFile, cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read instructions: %w", err)
		}
		instructions = string(data)
	}
	if strings.TrimSpace(instructions) == "" {
		return gantt.ErrEmptyInstructions
	}

	a, err := global.load()
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	ctx := log.WithRequestID(cmd.Context(), runID)

	docs, err := a.readDocuments(ctx, opts.docs)
	if err != nil {
		return err
	}

	manager, err := llmprovider.NewManagerFromConfig(ctx, &a.cfg.LLM, a.logger)
	if err != nil {
		return fmt.Errorf("%w: set GEMINI_API_KEY or OPENAI_API_KEY, or configure llm.providers", err)
	}

	uc := usecase.New(a.logger, manager, usecase.Config{
		Reconcile:   a.cfg.Gantt.Reconcile && !opts.noReconcile,
		Temperature: a.cfg.Gantt.Temperature,
		MaxTokens:   a.cfg.Gantt.MaxTokens,
	})

	ucFormat := gantt.FormatJSON
	if format == formatHTML {
		ucFormat = gantt.FormatHTML
	}
	out, err := uc.Generate(ctx, gantt.GenerateInput{
		Instructions: instructions,
		Documents:    docs,
		Format:       ucFormat,
	})
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
	if err := closeOut(); err != nil {
		return err
	}

	status := cmd.ErrOrStderr()
	fmt.Fprintf(status, "Generated %q: %d %ss, %d phases, %d tasks (provider %s, run %s)\n",
		out.Timeline.Title, out.Timeline.TotalIntervals, out.Timeline.Unit,
		len(out.Timeline.Phases), out.Timeline.TaskCount(), out.Provider, runID)
	if out.Correction.Applied {
		fmt.Fprintf(status, "Axis corrected from %d %ss to %d %ss (%s)\n",
			out.Correction.FromTotal, out.Correction.FromUnit,
			out.Correction.ToTotal, out.Correction.ToUnit, out.Correction.Rule)
	}
	if opts.out != "" && opts.out != "-" {
		fmt.Fprintf(status, "Wrote %s\n", opts.out)
	}
	return nil
}
