package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/justicelink/justicelink/internal/config"
	"github.com/justicelink/justicelink/internal/database"
	"github.com/justicelink/justicelink/internal/services"
	"github.com/justicelink/justicelink/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Verify the HTTP listener is up before touching the database
	if err := utils.PingServer("localhost", cfg.Port, 1500*time.Millisecond); err != nil {
		log.Fatalf("Server port check failed: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Perform health check
	result := services.HealthCheck(cfg, db)

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
