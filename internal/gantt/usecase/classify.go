package usecase

import (
	"context"

	"gantt-chart-generator/internal/gantt"
	"gantt-chart-generator/internal/interval"
)

// Classify runs the interval heuristic over the inputs.
func (uc *implUseCase) Classify(ctx context.Context, input gantt.ClassifyInput) gantt.ClassifyOutput {
	est := interval.ClassifyInputs(input.Instructions, input.Documents)
	uc.l.Debugf(ctx, "uc.Classify: unit=%s total=%d rule=%s", est.Unit, est.TotalIntervals, est.Rule)
	return gantt.ClassifyOutput{
		Estimate: est,
		Hint:     est.Hint(),
	}
}
