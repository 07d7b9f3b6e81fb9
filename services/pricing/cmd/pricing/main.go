package main

import (
	"log"

	"github.com/shestoi/GoGrocery/services/pricing/internal/app"
	"github.com/shestoi/GoGrocery/services/pricing/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.Build(cfg)
	if err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Service error: %v", err)
	}
}
