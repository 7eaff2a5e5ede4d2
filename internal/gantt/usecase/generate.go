package usecase

import (
	"context"
	"fmt"
	"strings"

	"gantt-chart-generator/internal/gantt"
	"gantt-chart-generator/internal/interval"
	"gantt-chart-generator/internal/render"
	"gantt-chart-generator/internal/schema"
	"gantt-chart-generator/pkg/llmprovider"
)

// Generate runs classify, compose, one model call, validate, reconcile and render.
// A failed model call fails the whole generation; no partial timeline is returned.
func (uc *implUseCase) Generate(ctx context.Context, input gantt.GenerateInput) (gantt.GenerateOutput, error) {
	if strings.TrimSpace(input.Instructions) == "" {
		return gantt.GenerateOutput{}, gantt.ErrEmptyInstructions
	}
	format, err := gantt.ParseFormat(string(input.Format))
	if err != nil {
		return gantt.GenerateOutput{}, err
	}

	est := interval.ClassifyInputs(input.Instructions, input.Documents)
	uc.l.Infof(ctx, "uc.Generate: estimate unit=%s total=%d rule=%s documents=%d",
		est.Unit, est.TotalIntervals, est.Rule, len(input.Documents))

	req := llmprovider.UserText("", composePrompt(input.Instructions, input.Documents, est))
	req.Temperature = uc.cfg.Temperature
	req.MaxTokens = uc.cfg.MaxTokens
	req.ResponseFormat = llmprovider.ResponseFormatJSON

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Generate: llm.GenerateContent: %v", err)
		return gantt.GenerateOutput{}, &gantt.TransportError{Err: err}
	}

	tl, err := schema.Parse(resp.Text())
	if err != nil {
		uc.l.Warnf(ctx, "uc.Generate: schema.Parse (provider=%s): %v", resp.ProviderName, err)
		return gantt.GenerateOutput{}, err
	}

	out := gantt.GenerateOutput{
		Estimate: est,
		Provider: resp.ProviderName,
		Model:    resp.ModelName,
	}

	if uc.cfg.Reconcile {
		var corr interval.Correction
		tl, corr = interval.Reconcile(tl, interval.SourceText(input.Instructions, input.Documents))
		if corr.Applied {
			uc.l.Infof(ctx, "uc.Generate: reconciled axis %s/%d -> %s/%d (rule=%s)",
				corr.FromUnit, corr.FromTotal, corr.ToUnit, corr.ToTotal, corr.Rule)
		}
		out.Correction = corr
	}
	out.Timeline = tl

	if format == gantt.FormatHTML {
		markup, err := render.HTML(tl)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Generate: render.HTML on validated timeline: %v", err)
			return gantt.GenerateOutput{}, fmt.Errorf("render: %w", err)
		}
		out.HTML = markup
	}

	uc.l.Infof(ctx, "uc.Generate: timeline %q unit=%s total=%d phases=%d tasks=%d",
		tl.Title, tl.Unit, tl.TotalIntervals, len(tl.Phases), tl.TaskCount())
	return out, nil
}
