package gantt

import (
	"context"

	"gantt-chart-generator/pkg/llmprovider"
)

//go:generate mockgen -destination=usecase/mock_llm_test.go -package=usecase gantt-chart-generator/internal/gantt LLM
//go:generate mockgen -destination=delivery/http/mock_usecase_test.go -package=http gantt-chart-generator/internal/gantt UseCase

// UseCase defines the business logic interface for the gantt domain.
type UseCase interface {
	// Generate turns instructions and reference documents into a validated
	// timeline through one language-model call, then renders it.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)

	// Render validates a caller-supplied timeline document and renders it.
	Render(ctx context.Context, input RenderInput) (RenderOutput, error)

	// Classify estimates the timeline axis from free text without calling a model.
	Classify(ctx context.Context, input ClassifyInput) ClassifyOutput
}

// LLM is the single external call the pipeline makes.
// *llmprovider.Manager satisfies it.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
