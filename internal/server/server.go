package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/LuiseFreese/mermaid-sub012/internal/cdm"
	"github.com/LuiseFreese/mermaid-sub012/internal/config"
	"github.com/LuiseFreese/mermaid-sub012/internal/database"
	"github.com/LuiseFreese/mermaid-sub012/internal/handlers"
	"github.com/LuiseFreese/mermaid-sub012/internal/middlewares"
	"github.com/LuiseFreese/mermaid-sub012/internal/repositories"
	"github.com/LuiseFreese/mermaid-sub012/internal/routes"
	"github.com/LuiseFreese/mermaid-sub012/internal/services"
)

func NewServer() *http.Server {
	cfg := config.Load()

	// The validation engine itself needs no storage; history is optional.
	var historyRepo *repositories.HistoryRepository
	if cfg.HistoryEnabled {
		pool, err := database.Connect()
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := database.RunMigrations(ctx, pool); err != nil {
			log.Fatalf("failed to prepare database schema: %v", err)
		}
		historyRepo = repositories.NewHistoryRepository(pool)
	} else {
		log.Println("No database configured; validation history is disabled")
	}

	// Dependency injection
	validationService := services.NewValidationService(cdm.NewStaticRegistry())
	historyService := services.NewHistoryService(historyRepo)
	validationHandler := handlers.NewValidationHandler(validationService, historyService)
	historyHandler := handlers.NewHistoryHandler(historyService)

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middlewares.BodyLimit(cfg.MaxBodyBytes))
	routes.RegisterRoutes(router, validationHandler, historyHandler)

	// Create and configure the HTTP server
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
