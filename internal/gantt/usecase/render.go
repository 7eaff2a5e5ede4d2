package usecase

import (
	"context"
	"fmt"

	"gantt-chart-generator/internal/gantt"
	"gantt-chart-generator/internal/render"
	"gantt-chart-generator/internal/schema"
)

// Render validates an untrusted timeline and renders it to markup.
func (uc *implUseCase) Render(ctx context.Context, input gantt.RenderInput) (gantt.RenderOutput, error) {
	if input.Timeline == nil {
		return gantt.RenderOutput{}, gantt.ErrMissingTimeline
	}

	tl, err := schema.Validate(input.Timeline)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Render: schema.Validate: %v", err)
		return gantt.RenderOutput{}, err
	}

	markup, err := render.HTML(tl)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Render: render.HTML on validated timeline: %v", err)
		return gantt.RenderOutput{}, fmt.Errorf("render: %w", err)
	}

	return gantt.RenderOutput{Timeline: tl, HTML: markup}, nil
}
