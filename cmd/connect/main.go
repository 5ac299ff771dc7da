package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ayross-237/Connect4/internal/analytics"
	"github.com/Ayross-237/Connect4/internal/config"
	"github.com/Ayross-237/Connect4/internal/console"
	"github.com/Ayross-237/Connect4/internal/game"
	"github.com/Ayross-237/Connect4/internal/storage"
)

const saveTimeout = 5 * time.Second

func main() {
	// game output owns stdout
	log.SetOutput(os.Stderr)

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
	// results of a game abandoned by a signal are still archived and published
	hookCtx := context.WithoutCancel(ctx)

	var store storage.Store = storage.NewMemoryStore()
	if cfg.PostgresURL != "" {
		pg, err := storage.NewPostgresStore(ctx, cfg.PostgresURL)
		if err != nil {
			log.Printf("postgres disabled: %v", err)
		} else {
			defer pg.Close(hookCtx)
			if err := pg.EnsureTables(ctx); err != nil {
				log.Printf("postgres ensure tables failed: %v", err)
			}
			store = pg
		}
	}

	producer := analytics.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()

	manager, err := game.NewManager(rules, game.Hooks{
		OnMove: func(g *game.GameState, res game.MoveResult) {
			producer.Publish(hookCtx, analytics.EventMovePlayed, analytics.MovePayload(g, res))
		},
		OnFinish: func(g *game.GameState) {
			saveCtx, cancel := context.WithTimeout(hookCtx, saveTimeout)
			defer cancel()
			if err := store.SaveGame(saveCtx, storage.FromGame(g)); err != nil {
				log.Printf("save game %s: %v", g.ID, err)
			}
			producer.Publish(hookCtx, analytics.EventGameFinished, analytics.FinishedPayload(g))
		},
	})
	if err != nil {
		log.Printf("start game: %v", err)
		return
	}

	err = console.NewSession(manager, os.Stdin, os.Stdout).Run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		log.Println("interrupted, game abandoned")
	case err != nil:
		log.Printf("session ended: %v", err)
	}
}
