package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"gosystembolaget_api/config"
	"gosystembolaget_api/internal/systembolaget/app"
	"gosystembolaget_api/pkg/dbconnect/postgres"
)

func main() {
	log.Printf("Started app")

	configPath := flag.String("config", "config.yaml", "path to the yaml configuration file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("Failed to load config %s: %v", *configPath, err)
		}
		log.Printf("Config file %s not found, using defaults", *configPath)
		cfg = config.DefaultConfig()
	}

	connector := postgres.NewPgConnector(&cfg.Postgres)
	server := app.NewServer(connector, cfg, os.Stdout)

	if err := server.Run(context.Background()); err != nil {
		log.Fatalf("Terminal error causing shutdown: %v", err)
	}
}
