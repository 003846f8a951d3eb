package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/config"
)

func main() {
	// Basic logging
	log.Println("Starting POS backend server...")

	// Load configuration; a missing database credential fails fast here
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	router := setupRouter(cfg, db)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "POS backend is running",
	})
}
