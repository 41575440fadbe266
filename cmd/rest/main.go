package main

import (
	"context"
	"log"

	"tutorhive-be/internal/bootstrap"
	"tutorhive-be/internal/config"
	"tutorhive-be/internal/server"
	"tutorhive-be/internal/tracer"
	"tutorhive-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// Background workers
	go func() {
		log.Println("Background: Starting mail consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()
	container.NotificationService.Start()

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
