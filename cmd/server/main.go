package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ayross-237/Connect4/internal/config"
	"github.com/Ayross-237/Connect4/internal/server"
	"github.com/Ayross-237/Connect4/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	rules, err := cfg.Rules()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store storage.Store
	if cfg.PostgresURL != "" {
		pg, err := storage.NewPostgresStore(ctx, cfg.PostgresURL)
		if err != nil {
			log.Printf("postgres disabled: %v", err)
		} else {
			defer pg.Close(context.Background())
			if err := pg.EnsureTables(ctx); err != nil {
				log.Printf("postgres ensure tables failed: %v", err)
			}
			store = pg
		}
	}
	if store == nil {
		log.Println("no POSTGRES_URL, serving empty in-memory standings")
	}

	srv := server.New(server.Config{
		Store:          store,
		Rules:          rules,
		StandingsLimit: cfg.StandingsLimit,
	})
	if err := srv.Run(ctx, cfg.ListenAddr()); err != nil {
		log.Fatal(err)
	}
	log.Println("Server exited gracefully")
}
