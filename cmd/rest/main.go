package main

import (
	"context"
	"log"

	"ai-salesclone-be/internal/bootstrap"
	"ai-salesclone-be/internal/config"
	"ai-salesclone-be/internal/server"
	"ai-salesclone-be/internal/tracer"
	"ai-salesclone-be/pkg/database"
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

	// Websocket hub and analytics consumer run for the process lifetime
	go container.Hub.Run()
	go func() {
		log.Println("Background: Starting Analytics Consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
