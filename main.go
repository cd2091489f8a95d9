package main

import (
	"context"
	"log"
	"os"

	"tokoadmin/internal/config"
	"tokoadmin/internal/database"
	"tokoadmin/internal/services"
	"tokoadmin/pkg/rabbitmq"

	gfshutdown "github.com/gelmium/graceful-shutdown"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Database ---
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN, cfg.DatabaseLogLevel)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{
			URL:            cfg.RabbitMQURL,
			Exchanges:      []string{services.CatalogExchange},
			PublishTimeout: cfg.PublishTimeout,
		})
		if err != nil {
			log.Printf("Warning: catalog events disabled: %v", err)
		} else {
			publisher = mqClient
		}
	}

	app := newApp(cfg, db, publisher)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)
	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			// Operations run concurrently; the broker and database close only after the server drained.
			"http-server": func(ctx context.Context) error {
				log.Println("Shutting down server...")
				if err := app.ShutdownWithContext(ctx); err != nil {
					return err
				}
				if mqClient != nil {
					if err := mqClient.Close(); err != nil {
						log.Printf("Error closing RabbitMQ client: %v", err)
					}
				}
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		},
	)

	exitCode := <-wait
	log.Printf("Server stopped with code: %d", exitCode)
	os.Exit(exitCode)
}
