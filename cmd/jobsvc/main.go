package main

import (
	"log"
	"os"

	"github.com/you/jobsvc/internal/app"
	"github.com/you/jobsvc/internal/config"
	"github.com/you/jobsvc/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err := app.Run(cfg, logger); err != nil {
		log.Fatalf("app: %v", err)
	}
}
