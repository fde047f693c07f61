package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/mjtaylor123/sunlessCoding/db"
	"github.com/mjtaylor123/sunlessCoding/internal/config"
	"github.com/mjtaylor123/sunlessCoding/internal/handlers"
	"github.com/mjtaylor123/sunlessCoding/internal/notify"
	"github.com/mjtaylor123/sunlessCoding/internal/router"
	"github.com/mjtaylor123/sunlessCoding/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	database, err := db.ConnectDatabase(cfg.Database.DSN())

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	st := store.New(database)

	broker, err := notify.NewBroker(cfg.Broker.URL, cfg.Broker.ClientID)

	if err != nil {
		log.Fatalf("Failed to connect to MQTT broker: %v", err)
	}
	defer broker.Close()

	updater := notify.NewUpdater(st)

	consumer := notify.NewConsumer(broker, updater.HandlePostCreated, handlers.BroadcastPostCreated)

	if err := consumer.Start(); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}
	defer consumer.Stop()

	r := router.NewRouter(router.Handlers{
		Users:  handlers.NewUserHandler(st),
		Posts:  handlers.NewPostHandler(st, broker),
		Health: handlers.NewHealthHandler(st, broker),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
