package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/LuiseFreese/mermaid-sub012/internal/handlers"
)

type ValidationRoutes struct {
	handler *handlers.ValidationHandler
}

func NewValidationRoutes(handler *handlers.ValidationHandler) *ValidationRoutes {
	return &ValidationRoutes{handler: handler}
}

func (r *ValidationRoutes) RegisterRoutes(router *gin.RouterGroup) {
	erd := router.Group("/erd")
	{
		erd.POST("/validate", r.handler.Validate)
		erd.POST("/fix", r.handler.Fix)
	}
}
