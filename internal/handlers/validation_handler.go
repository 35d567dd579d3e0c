package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
	"github.com/LuiseFreese/mermaid-sub012/internal/responses"
	"github.com/LuiseFreese/mermaid-sub012/internal/services"
)

type ValidationHandler struct {
	validationService *services.ValidationService
	historyService    *services.HistoryService
}

func NewValidationHandler(validationService *services.ValidationService, historyService *services.HistoryService) *ValidationHandler {
	return &ValidationHandler{
		validationService: validationService,
		historyService:    historyService,
	}
}

type validateRequest struct {
	MermaidContent string `json:"mermaidContent" binding:"required"`
	AutoFix        bool   `json:"autoFix"`
}

type fixRequest struct {
	MermaidContent string         `json:"mermaidContent" binding:"required"`
	Warning        models.Warning `json:"warning" binding:"required"`
}

// Validate handles POST /api/v1/erd/validate
func (h *ValidationHandler) Validate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: mermaidContent is required")
		return
	}

	result := h.validationService.Validate(req.MermaidContent, req.AutoFix)

	data := gin.H{"result": result}
	if h.historyService.Enabled() {
		runID, err := h.historyService.Record(c.Request.Context(), result)
		if err != nil {
			// History is best-effort; the validation result still stands.
			log.Printf("failed to record validation run: %v", err)
		} else {
			data["runId"] = runID
		}
	}

	responses.Success(c, http.StatusOK, data, "Validation completed")
}

// Fix handles POST /api/v1/erd/fix
func (h *ValidationHandler) Fix(c *gin.Context) {
	var req fixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: mermaidContent and warning are required")
		return
	}

	result := h.validationService.Fix(req.MermaidContent, req.Warning)

	// A failed fix is a user-facing condition, not a transport error; the
	// structured result carries the message either way.
	responses.Success(c, http.StatusOK, result, "Fix processed")
}
