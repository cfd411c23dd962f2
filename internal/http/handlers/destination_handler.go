// README: Destination handlers (catalog browsing by departure city).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripfit/internal/modules/catalog"
	"tripfit/internal/modules/pricing"
)

type DestinationHandler struct {
	catalog *catalog.Service
}

func NewDestinationHandler(svc *catalog.Service) *DestinationHandler {
	return &DestinationHandler{catalog: svc}
}

func (h *DestinationHandler) List(c *gin.Context) {
	from := c.Query("from")
	if from == "" {
		writeError(c, http.StatusBadRequest, "missing from")
		return
	}
	dests, err := h.catalog.ListFrom(c.Request.Context(), from)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if dests == nil {
		dests = []pricing.Destination{}
	}
	writeJSON(c, http.StatusOK, gin.H{"destinations": dests})
}

func (h *DestinationHandler) Cities(c *gin.Context) {
	cities, err := h.catalog.Cities(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if cities == nil {
		cities = []string{}
	}
	writeJSON(c, http.StatusOK, gin.H{"cities": cities})
}
