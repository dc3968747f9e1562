package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/meeplelog/meeplelog/internal/config"
	"github.com/meeplelog/meeplelog/internal/webapp"
)

func main() {
	// A missing .env file is fine; variables may come from the real env.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := webapp.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
