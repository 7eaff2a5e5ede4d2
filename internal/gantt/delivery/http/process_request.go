package http

import (
	"github.com/gin-gonic/gin"
)

// processGenerateReq binds and validates the generate request body.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processRenderReq binds and validates the render request body.
func (h *handler) processRenderReq(c *gin.Context) (renderReq, error) {
	var req renderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processClassifyReq binds and validates the classify request body.
func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
