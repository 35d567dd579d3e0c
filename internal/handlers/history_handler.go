package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LuiseFreese/mermaid-sub012/internal/responses"
	"github.com/LuiseFreese/mermaid-sub012/internal/services"
	"github.com/LuiseFreese/mermaid-sub012/internal/utils"
)

type HistoryHandler struct {
	historyService *services.HistoryService
}

func NewHistoryHandler(historyService *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// List handles GET /api/v1/erd/history
func (h *HistoryHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	runs, err := h.historyService.List(c.Request.Context(), limit)
	if errors.Is(err, services.ErrHistoryDisabled) {
		responses.Fail(c, http.StatusServiceUnavailable, err, "Validation history is not enabled")
		return
	}
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to list validation runs")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"runs": runs}, "Validation runs retrieved")
}

// Get handles GET /api/v1/erd/history/:id
func (h *HistoryHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid run ID format")
		return
	}

	run, err := h.historyService.Get(c.Request.Context(), id.String())
	if errors.Is(err, services.ErrHistoryDisabled) {
		responses.Fail(c, http.StatusServiceUnavailable, err, "Validation history is not enabled")
		return
	}
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to load validation run")
		return
	}
	if run == nil {
		responses.Fail(c, http.StatusNotFound, nil, "Validation run not found")
		return
	}

	responses.Success(c, http.StatusOK, run, "Validation run retrieved")
}
