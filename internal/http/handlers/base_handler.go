// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripfit/internal/modules/pricing"
	"tripfit/internal/modules/suggest"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeServiceError maps domain errors to statuses. Anything unrecognised is
// reported as a bare 500 and left for the error log.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, suggest.ErrInvalidRequest), errors.Is(err, pricing.ErrInvalidParams):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
