package main

import (
	"os"

	"github.com/joho/godotenv"

	"autocart-backend/pkg/container"
	"autocart-backend/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))

	c, err := container.NewContainer()
	if err != nil {
		logger.Error("failed to initialize application", err)
		os.Exit(1)
	}
	defer c.Cleanup()

	if err := Serve(c); err != nil {
		logger.Error("server stopped with error", err)
		os.Exit(1)
	}
}
