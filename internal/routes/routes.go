package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LuiseFreese/mermaid-sub012/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, validationHandler *handlers.ValidationHandler, historyHandler *handlers.HistoryHandler) {
	api := router.Group("/api/v1")

	validationRoutes := NewValidationRoutes(validationHandler)
	validationRoutes.RegisterRoutes(api)

	historyRoutes := NewHistoryRoutes(historyHandler)
	historyRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
