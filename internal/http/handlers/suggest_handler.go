// README: Suggestion handler: budget-fit destinations for a trip request.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripfit/internal/modules/suggest"
)

type SuggestHandler struct {
	suggest *suggest.Service
}

func NewSuggestHandler(svc *suggest.Service) *SuggestHandler {
	return &SuggestHandler{suggest: svc}
}

func (h *SuggestHandler) Create(c *gin.Context) {
	var req suggest.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	res, err := h.suggest.Suggest(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}
