package main

import (
	"log"

	"resume-scorer/internal/bootstrap"
	"resume-scorer/internal/server"
	"resume-scorer/internal/shared/config"
	"resume-scorer/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Init(cfg.LogLevel)

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	r := server.NewRouter(app)
	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
