package main

import (
	"os"

	"github.com/khalil-js/VETANIMALIA/internal/app"
	config "github.com/khalil-js/VETANIMALIA/internal/cfg"
	"github.com/khalil-js/VETANIMALIA/pkg/logger"
)

// @title        VETANIMALIA Storefront API
// @version      1.0
// @description  Витрина зоомагазина: каталог, корзина и чекаут

// @host      localhost:8080
// @BasePath  /api/v1
func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
