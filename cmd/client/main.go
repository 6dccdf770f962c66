package main

import (
	"context"
	"log"

	"cantina-pos/internal/client/cli"
	"cantina-pos/internal/client/config"
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
