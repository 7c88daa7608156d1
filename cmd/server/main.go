package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/louvor-app/worship-planner/internal/api"
	"github.com/louvor-app/worship-planner/internal/config"
	"github.com/louvor-app/worship-planner/internal/models"
	"github.com/louvor-app/worship-planner/internal/repository"
	"github.com/louvor-app/worship-planner/internal/service"
	"github.com/louvor-app/worship-planner/internal/store"
	"github.com/louvor-app/worship-planner/internal/utils"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	logger := utils.NewLogger(cfg.Log.Level)

	// Set up the database backing the durable state slot
	db, err := config.SetupDatabase(cfg)
	if err != nil {
		logger.Fatalf("Failed to set up database: %v", err)
	}
	defer db.Close()

	slot, err := repository.NewSQLiteSlot(db, store.SlotKey)
	if err != nil {
		logger.Fatalf("Failed to create state slot: %v", err)
	}

	// Rehydrate the store from the slot, seeding on first run
	st, err := store.New(context.Background(), slot, logger)
	if err != nil {
		logger.Fatalf("Failed to load state: %v", err)
	}
	st.Subscribe(func(state models.State) {
		logger.WithField("songs", len(state.Songs)).
			WithField("services", len(state.Services)).
			Debug("state changed")
	})

	// Create service
	svc := service.NewDefaultService(st)

	// Create API handler
	handler := api.NewHandler(svc)

	// Set up Gin router
	router := gin.New()
	router.Use(api.RequestLogger(logger), gin.Recovery())

	// Set up routes
	handler.SetupRoutes(router)

	// Start server
	serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Infof("Starting server on %s", serverAddr)
	if err := http.ListenAndServe(serverAddr, router); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
