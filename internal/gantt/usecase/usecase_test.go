package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gantt-chart-generator/internal/gantt"
	"gantt-chart-generator/internal/interval"
	"gantt-chart-generator/internal/model"
	"gantt-chart-generator/internal/schema"
	"gantt-chart-generator/pkg/llmprovider"
	"gantt-chart-generator/pkg/log"
)

const pilotJSON = `{"title":"Pilot","unit":"week","totalIntervals":4,"phases":[` +
	`{"name":"Plan","colorKey":"planning","tasks":[{"name":"Scope","startIndex":1,"endIndex":2}]},` +
	`{"name":"Build","colorKey":"development","tasks":[{"name":"Code","startIndex":2,"endIndex":4}]}]}`

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: text}}},
		ProviderName: "gemini",
		ModelName:    "gemini-2.5-flash",
		Usage:        &llmprovider.Usage{},
	}
}

func newTestUseCase(t *testing.T, cfg Config) (gantt.UseCase, *MockLLM) {
	t.Helper()
	ctrl := gomock.NewController(t)
	llm := NewMockLLM(ctrl)
	return New(log.NewNop(), llm, cfg), llm
}

func TestGenerate_HTML(t *testing.T) {
	uc, llm := newTestUseCase(t, Config{Reconcile: true, Temperature: 0.7})

	var got *llmprovider.Request
	llm.EXPECT().GenerateContent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
			got = req
			return textResponse("Here you go:\n```json\n" + pilotJSON + "\n```"), nil
		})

	out, err := uc.Generate(context.Background(), gantt.GenerateInput{Instructions: "A 4-week pilot"})
	require.NoError(t, err)

	assert.Equal(t, "Pilot", out.Timeline.Title)
	assert.Equal(t, "gemini", out.Provider)
	assert.Equal(t, "gemini-2.5-flash", out.Model)
	assert.Equal(t, model.UnitWeek, out.Estimate.Unit)
	assert.Equal(t, 4, out.Estimate.TotalIntervals)
	assert.False(t, out.Correction.Applied)
	assert.Contains(t, out.HTML, `<div class="header-cell">W4</div>`)

	require.NotNil(t, got)
	assert.Equal(t, llmprovider.ResponseFormatJSON, got.ResponseFormat)
	assert.Equal(t, 0.7, got.Temperature)
	assert.Equal(t, defaultMaxTokens, got.MaxTokens)
	assert.Contains(t, got.Messages[0].Parts[0].Text, "A 4-week pilot")
}

func TestGenerate_JSONFormatSkipsMarkup(t *testing.T) {
	uc, llm := newTestUseCase(t, Config{})
	llm.EXPECT().GenerateContent(gomock.Any(), gomock.Any()).Return(textResponse(pilotJSON), nil)

	out, err := uc.Generate(context.Background(), gantt.GenerateInput{Instructions: "pilot", Format: gantt.FormatJSON})
	require.NoError(t, err)
	assert.Empty(t, out.HTML)
	assert.Equal(t, 4, out.Timeline.TotalIntervals)
}

func TestGenerate_ReconcilesDecadePlan(t *testing.T) {
	uc, llm := newTestUseCase(t, Config{Reconcile: true})
	weekly := `{"title":"Decade","unit":"week","totalIntervals":5,"phases":[` +
		`{"name":"Plan","colorKey":"planning","tasks":[{"name":"Frame","startIndex":3,"endIndex":5}]}]}`
	llm.EXPECT().GenerateContent(gomock.Any(), gomock.Any()).Return(textResponse(weekly), nil)

	out, err := uc.Generate(context.Background(), gantt.GenerateInput{Instructions: "Plan 2020 to 2029 transformation"})
	require.NoError(t, err)

	assert.True(t, out.Correction.Applied)
	assert.Equal(t, model.UnitYear, out.Timeline.Unit)
	assert.Equal(t, 10, out.Timeline.TotalIntervals)
	assert.Equal(t, model.Task{Name: "Frame", StartIndex: 6, EndIndex: 10}, out.Timeline.Phases[0].Tasks[0])
	assert.Contains(t, out.HTML, `<div class="header-cell">Y10</div>`)
}

func TestGenerate_ReconcileDisabled(t *testing.T) {
	uc, llm := newTestUseCase(t, Config{Reconcile: false})
	llm.EXPECT().GenerateContent(gomock.Any(), gomock.Any()).Return(textResponse(pilotJSON), nil)

	out, err := uc.Generate(context.Background(), gantt.GenerateInput{Instructions: "Plan 2020 to 2029"})
	require.NoError(t, err)
	assert.False(t, out.Correction.Applied)
	assert.Equal(t, model.UnitWeek, out.Timeline.Unit)
}

func TestGenerate_EmptyInstructions(t *testing.T) {
	uc, _ := newTestUseCase(t, Config{})
	_, err := uc.Generate(context.Background(), gantt.GenerateInput{Instructions: "  \n"})
	assert.ErrorIs(t, err, gantt.ErrEmptyInstructions)
}

func TestGenerate_InvalidFormat(t *testing.T) {
	uc, _ := newTestUseCase(t, Config{})
	_, err := uc.Generate(context.Background(), gantt.GenerateInput{Instructions: "x", Format: "pdf"})
	assert.ErrorIs(t, err, gantt.ErrInvalidFormat)
}

func TestGenerate_TransportFailure(t *testing.T) {
	uc, llm := newTestUseCase(t, Config{})
	llm.EXPECT().GenerateContent(gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(llmprovider.ErrAllProvidersFailed, context.DeadlineExceeded))

	_, err := uc.Generate(context.Background(), gantt.GenerateInput{Instructions: "x"})
	var terr *gantt.TransportError
	require.ErrorAs(t, err, &terr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, llmprovider.ErrAllProvidersFailed)
}

func TestGenerate_CancelledAfterCall(t *testing.T) {
	uc, llm := newTestUseCase(t, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	llm.EXPECT().GenerateContent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *llmprovider.Request) (*llmprovider.Response, error) {
			cancel()
			return textResponse(pilotJSON), nil
		})

	out, err := uc.Generate(ctx, gantt.GenerateInput{Instructions: "x"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.Timeline.Phases)
}

func TestGenerate_ExtractionFailure(t *testing.T) {
	uc, llm := newTestUseCase(t, Config{})
	llm.EXPECT().GenerateContent(gomock.Any(), gomock.Any()).Return(textResponse("I cannot help with that."), nil)

	_, err := uc.Generate(context.Background(), gantt.GenerateInput{Instructions: "x"})
	var xerr *schema.ExtractionError
	assert.ErrorAs(t, err, &xerr)
}

func TestGenerate_SchemaFailure(t *testing.T) {
	uc, llm := newTestUseCase(t, Config{})
	bad := strings.Replace(pilotJSON, `"endIndex":4`, `"endIndex":9`, 1)
	llm.EXPECT().GenerateContent(gomock.Any(), gomock.Any()).Return(textResponse(bad), nil)

	_, err := uc.Generate(context.Background(), gantt.GenerateInput{Instructions: "x"})
	var serr *schema.SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "phases[1].tasks[0].endIndex", serr.Path)
}

func TestRender(t *testing.T) {
	uc, _ := newTestUseCase(t, Config{})

	doc, err := schema.Extract(pilotJSON)
	require.NoError(t, err)

	out, err := uc.Render(context.Background(), gantt.RenderInput{Timeline: doc})
	require.NoError(t, err)
	assert.Equal(t, "Pilot", out.Timeline.Title)
	assert.Contains(t, out.HTML, "PLAN")

	_, err = uc.Render(context.Background(), gantt.RenderInput{})
	assert.ErrorIs(t, err, gantt.ErrMissingTimeline)

	_, err = uc.Render(context.Background(), gantt.RenderInput{Timeline: map[string]any{"title": "x"}})
	var serr *schema.SchemaError
	assert.ErrorAs(t, err, &serr)
}

func TestRenderRejectsOversizedAxis(t *testing.T) {
	uc, _ := newTestUseCase(t, Config{})

	tasks := make([]any, 20)
	for i := range tasks {
		tasks[i] = map[string]any{"name": fmt.Sprintf("t%d", i), "startIndex": 1, "endIndex": 1}
	}
	doc := map[string]any{
		"title":          "Huge",
		"totalIntervals": 200000,
		"phases":         []any{map[string]any{"name": "P", "colorKey": "planning", "tasks": tasks}},
	}

	out, err := uc.Render(context.Background(), gantt.RenderInput{Timeline: doc})
	var serr *schema.SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "totalIntervals", serr.Path)
	assert.Empty(t, out.HTML)
}

func TestClassify(t *testing.T) {
	uc, _ := newTestUseCase(t, Config{})
	out := uc.Classify(context.Background(), gantt.ClassifyInput{Instructions: "A 3-year roadmap"})
	assert.Equal(t, model.UnitQuarter, out.Estimate.Unit)
	assert.Equal(t, 12, out.Estimate.TotalIntervals)
	assert.Equal(t, out.Estimate.Hint(), out.Hint)
}

func TestComposePrompt(t *testing.T) {
	est := interval.Classify("18-month development")
	prompt := composePrompt("Build the platform", nil, est)

	assert.True(t, strings.HasPrefix(prompt, promptRole))
	assert.Contains(t, prompt, est.Hint())
	assert.Contains(t, prompt, "Build the platform")
	assert.Contains(t, prompt, noDocuments)
	assert.Contains(t, prompt, string(schema.Document()))
	assert.Contains(t, prompt, "deployment (#4caf50)")
	assert.True(t, strings.HasSuffix(prompt, promptClosing))

	withDocs := composePrompt("x", []string{"alpha", "beta"}, est)
	assert.Contains(t, withDocs, "--- Document 1 ---\nalpha\n")
	assert.Contains(t, withDocs, "--- Document 2 ---\nbeta\n")
	assert.NotContains(t, withDocs, noDocuments)
}
