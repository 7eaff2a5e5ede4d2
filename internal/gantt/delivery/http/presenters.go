package http

import (
	"strings"

	"gantt-chart-generator/internal/gantt"
	"gantt-chart-generator/internal/interval"
	"gantt-chart-generator/internal/model"
)

// --- Request DTOs ---

type generateReq struct {
	Instructions string   `json:"instructions" binding:"required"`
	Documents    []string `json:"documents"    binding:"max=20"`
	Format       string   `json:"format"       binding:"omitempty,oneof=html json HTML JSON"`
}

func (r generateReq) validate() error {
	if strings.TrimSpace(r.Instructions) == "" {
		return gantt.ErrEmptyInstructions
	}
	return nil
}

func (r generateReq) toInput() gantt.GenerateInput {
	return gantt.GenerateInput{
		Instructions: r.Instructions,
		Documents:    nonEmpty(r.Documents),
		Format:       gantt.Format(strings.ToLower(r.Format)),
	}
}

// ---

type renderReq struct {
	Timeline map[string]any `json:"timeline" binding:"required"`
	Format   string         `json:"format"   binding:"omitempty,oneof=html json HTML JSON"`
}

func (r renderReq) validate() error { return nil }

func (r renderReq) toInput() gantt.RenderInput {
	return gantt.RenderInput{Timeline: r.Timeline}
}

// ---

type classifyReq struct {
	Instructions string   `json:"instructions"`
	Documents    []string `json:"documents" binding:"max=20"`
}

func (r classifyReq) validate() error { return nil }

func (r classifyReq) toInput() gantt.ClassifyInput {
	return gantt.ClassifyInput{
		Instructions: r.Instructions,
		Documents:    nonEmpty(r.Documents),
	}
}

func nonEmpty(docs []string) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		if strings.TrimSpace(d) != "" {
			out = append(out, d)
		}
	}
	return out
}

func wantsJSON(format string) bool {
	return strings.EqualFold(format, string(gantt.FormatJSON))
}

// --- Response DTOs ---

type estimateResp struct {
	Unit           model.Unit `json:"unit"`
	TotalIntervals int        `json:"totalIntervals"`
	Rule           string     `json:"rule"`
	Approximate    bool       `json:"approximate"`
}

func newEstimateResp(e interval.Estimate) estimateResp {
	return estimateResp{
		Unit:           e.Unit,
		TotalIntervals: e.TotalIntervals,
		Rule:           e.Rule,
		Approximate:    e.Approximate,
	}
}

type correctionResp struct {
	Rule      string     `json:"rule"`
	FromUnit  model.Unit `json:"fromUnit"`
	FromTotal int        `json:"fromTotal"`
	ToUnit    model.Unit `json:"toUnit"`
	ToTotal   int        `json:"toTotal"`
}

type generateResp struct {
	Timeline   model.Timeline  `json:"timeline"`
	Estimate   estimateResp    `json:"estimate"`
	Correction *correctionResp `json:"correction,omitempty"`
	Provider   string          `json:"provider"`
	Model      string          `json:"model"`
}

func (h *handler) newGenerateResp(out gantt.GenerateOutput) generateResp {
	resp := generateResp{
		Timeline: out.Timeline,
		Estimate: newEstimateResp(out.Estimate),
		Provider: out.Provider,
		Model:    out.Model,
	}
	if c := out.Correction; c.Applied {
		resp.Correction = &correctionResp{
			Rule:      c.Rule,
			FromUnit:  c.FromUnit,
			FromTotal: c.FromTotal,
			ToUnit:    c.ToUnit,
			ToTotal:   c.ToTotal,
		}
	}
	return resp
}

type renderResp struct {
	Timeline model.Timeline `json:"timeline"`
}

type classifyResp struct {
	Estimate estimateResp `json:"estimate"`
	Hint     string       `json:"hint"`
}

func (h *handler) newClassifyResp(out gantt.ClassifyOutput) classifyResp {
	return classifyResp{
		Estimate: newEstimateResp(out.Estimate),
		Hint:     out.Hint,
	}
}
