package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gantt-chart-generator/config"
	"gantt-chart-generator/internal/document"
	"gantt-chart-generator/pkg/log"
)

var version = "dev"

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	debug      bool
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "gantt",
		Short: "Generate Gantt charts from project instructions with a language model",
		Long: `gantt turns free-text project instructions and reference documents into a
validated project timeline and renders it as an HTML Gantt chart, JSON, YAML
or a terminal table.

Providers are read from config.yaml (./config, ., /etc/gantt/) or from the
GEMINI_API_KEY / OPENAI_API_KEY environment variables.`,
		Version:      version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config.yaml (default: search ./config, ., /etc/gantt/)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")

	cmd.AddCommand(newGenerateCommand(opts))
	cmd.AddCommand(newRenderCommand(opts))
	cmd.AddCommand(newClassifyCommand(opts))

	return cmd
}

func execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCommand().ExecuteContext(ctx)
}

// app holds what a subcommand needs once flags are parsed.
type app struct {
	cfg    *config.Config
	logger log.Logger
}

func (o *globalOptions) load() (*app, error) {
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := "warn"
	if o.debug {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{
		Level:    level,
		Mode:     "production",
		Encoding: "console",
	})

	return &app{cfg: cfg, logger: logger}, nil
}

// readDocuments loads --doc files and reports skipped ones as warnings.
func (a *app) readDocuments(ctx context.Context, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	reader := document.New(a.logger, document.Config{
		MaxBytes:    a.cfg.Document.MaxBytes,
		Concurrency: a.cfg.Document.Concurrency,
	})
	res, err := reader.ReadAll(ctx, paths)
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		a.logger.Warnf(ctx, "document skipped: %s", w)
	}
	return res.Texts(), nil
}
