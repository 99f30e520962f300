package main

import (
	"context"
	"log"

	"github.com/gyulist/gyulist/internal/web"
	"github.com/gyulist/gyulist/internal/web/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := web.NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}

	app.Run(context.Background())
}
