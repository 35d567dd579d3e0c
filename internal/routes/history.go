package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/LuiseFreese/mermaid-sub012/internal/handlers"
)

type HistoryRoutes struct {
	handler *handlers.HistoryHandler
}

func NewHistoryRoutes(handler *handlers.HistoryHandler) *HistoryRoutes {
	return &HistoryRoutes{handler: handler}
}

func (r *HistoryRoutes) RegisterRoutes(router *gin.RouterGroup) {
	history := router.Group("/erd/history")
	{
		history.GET("", r.handler.List)
		history.GET("/:id", r.handler.Get)
	}
}
