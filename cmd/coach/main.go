package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/hydrohabit/internal/coach"
	"github.com/dmitrijs2005/hydrohabit/internal/coach/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := coach.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
