package main

import (
	"context"
	"log"

	"github.com/HunterBartelt/TinyTracker/internal/cli"
	"github.com/HunterBartelt/TinyTracker/internal/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
