package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/gamecatalog/internal/server"
	"github.com/dmitrijs2005/gamecatalog/internal/server/config"
	"github.com/dmitrijs2005/gamecatalog/internal/server/repositories/repomanager"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg, repomanager.NewPostgresRepositoryManager())
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
