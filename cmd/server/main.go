package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/abhi911kumar/freecode-ExerciseTracker/internal/api"
	"github.com/abhi911kumar/freecode-ExerciseTracker/internal/config"
	"github.com/abhi911kumar/freecode-ExerciseTracker/internal/models"
	"github.com/abhi911kumar/freecode-ExerciseTracker/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	// Configure GORM logger to ignore "record not found" errors
	// Lookups for unknown users and usernames miss routinely
	logLevel := logger.Warn
	if cfg.LogSQL {
		logLevel = logger.Info
	}
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := models.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize stores
	users := store.NewUserStore(db)
	exercises := store.NewExerciseStore(db)
	logs := store.NewLogBuilder(users, exercises)

	// Initialize REST API server
	apiServer := api.NewServer(users, exercises, logs)

	log.Printf("Starting HTTP server on 0.0.0.0:%s", cfg.HTTPPort)
	log.Printf("REST API endpoint: http://0.0.0.0:%s/api/exercise", cfg.HTTPPort)
	log.Printf("Metrics endpoint: http://0.0.0.0:%s/metrics", cfg.HTTPPort)

	if err := http.ListenAndServe("0.0.0.0:"+cfg.HTTPPort, apiServer.GetRouter()); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}
