package main

import (
	"context"
	"log"

	"livecontent/internal/server"
	"livecontent/internal/server/config"

	"github.com/joho/godotenv"
)

func main() {

	// Load .env if present; production deployments use real env vars.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
