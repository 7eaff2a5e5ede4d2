package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gantt-chart-generator/pkg/response"
)

// Generate godoc
// @Summary     Generate a Gantt chart
// @Description Sends instructions and reference documents to the language model, validates the returned timeline and renders it. format=html (default) returns a complete HTML document; format=json returns the timeline in the JSON envelope.
// @Tags        Gantt
// @Accept      json
// @Produce     html,json
// @Param       body body generateReq true "Instructions, documents and output format"
// @Success     200  {object} generateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Model output failed validation"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Language model call failed"
// @Failure     503  {object} response.Resp "No provider configured"
// @Failure     504  {object} response.Resp "Language model call timed out"
// @Router      /api/v1/gantt/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, h.mapBindError(err))
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("X-Gantt-Provider", output.Provider)
	c.Header("X-Gantt-Corrected", strconv.FormatBool(output.Correction.Applied))
	if wantsJSON(req.Format) {
		response.OK(c, h.newGenerateResp(output))
		return
	}
	response.HTML(c, output.HTML)
}

// Render godoc
// @Summary     Render a timeline
// @Description Validates a caller-supplied timeline and renders it without calling a model.
// @Tags        Gantt
// @Accept      json
// @Produce     html,json
// @Param       body body renderReq true "Timeline document and output format"
// @Success     200  {object} renderResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Timeline failed validation"
// @Router      /api/v1/gantt/render [POST]
func (h *handler) Render(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRenderReq(c)
	if err != nil {
		response.Error(c, h.mapBindError(err))
		return
	}

	output, err := h.uc.Render(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Render: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if wantsJSON(req.Format) {
		response.OK(c, renderResp{Timeline: output.Timeline})
		return
	}
	response.HTML(c, output.HTML)
}

// Classify godoc
// @Summary     Estimate the timeline axis
// @Description Runs the interval heuristic over instructions and documents and returns the unit, interval count and the hint sent to the model.
// @Tags        Gantt
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Instructions and documents"
// @Success     200  {object} classifyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/gantt/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, h.mapBindError(err))
		return
	}

	response.OK(c, h.newClassifyResp(h.uc.Classify(ctx, req.toInput())))
}
