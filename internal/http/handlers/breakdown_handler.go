// README: Breakdown handlers expose the cost engine directly (compute + what-if adjust).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripfit/internal/modules/pricing"
)

type BreakdownHandler struct{}

func NewBreakdownHandler() *BreakdownHandler {
	return &BreakdownHandler{}
}

type computeReq struct {
	Destination *pricing.Destination `json:"destination"`
	Params      pricing.Params       `json:"params"`
}

type adjustReq struct {
	Breakdown *pricing.Breakdown `json:"breakdown"`
	Delta     float64            `json:"delta"`
}

func (h *BreakdownHandler) Compute(c *gin.Context) {
	var req computeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	if req.Destination == nil {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}
	if _, err := pricing.ParseMode(string(req.Params.Mode)); err != nil {
		writeServiceError(c, err)
		return
	}
	if req.Params.Local == "" {
		req.Params.Local = pricing.LocalNone
	}
	if _, err := pricing.ParseLocalOption(string(req.Params.Local)); err != nil {
		writeServiceError(c, err)
		return
	}
	b, err := pricing.Compute(*req.Destination, req.Params)
	if errors.Is(err, pricing.ErrMalformedDestination) {
		// The record came from the caller here, not from the catalog.
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, b)
}

func (h *BreakdownHandler) Adjust(c *gin.Context) {
	var req adjustReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Breakdown == nil {
		writeError(c, http.StatusBadRequest, "missing breakdown")
		return
	}
	writeJSON(c, http.StatusOK, pricing.Adjust(*req.Breakdown, req.Delta))
}
