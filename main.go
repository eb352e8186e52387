package main

import (
	"log"
	"math/rand"
	"os"

	"blackjack/cli"
	"blackjack/config"
	"blackjack/events"
	"blackjack/random"
	"blackjack/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config failed: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	}
	rng := rand.New(rand.NewSource(seed))

	var store stats.Store
	if cfg.PersistenceDisabled() {
		store = stats.NewMemoryStore()
	} else {
		store, err = stats.OpenSQLite(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("Stats database failed: %v", err)
		}
	}
	defer store.Close()

	game := cli.New(os.Stdin, os.Stdout, cfg, rng, store, events.NewInMemoryEventStore())
	if err := game.Run(); err != nil {
		log.Fatalf("Game failed: %v", err)
	}
}
