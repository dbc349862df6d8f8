package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/peggy10039/cat-village-gaming/internal/app"
)

func main() {
	cfg := app.DefaultConfig()

	flag.StringVar(&cfg.Addr, "addr", envOr("ADDR", cfg.Addr), "listen address")
	flag.StringVar(&cfg.Seed, "seed", envOr("WORLD_SEED", cfg.Seed), "deterministic world seed")
	flag.IntVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "simulation ticks per second")
	flag.StringVar(&cfg.StoreBackend, "store", envOr("STORE_BACKEND", cfg.StoreBackend), "save backend: memory, redis, or postgres")
	flag.StringVar(&cfg.RedisAddr, "redis-addr", envOr("REDIS_ADDR", cfg.RedisAddr), "redis address for the redis backend")
	flag.StringVar(&cfg.PostgresDSN, "postgres-dsn", envOr("POSTGRES_DSN", cfg.PostgresDSN), "dsn for the postgres backend")
	logJSON := flag.String("log-json", envOr("LOG_JSON_PATH", ""), "also write events to this newline-delimited JSON file")
	flag.Parse()

	if *logJSON != "" {
		cfg.Logging.EnabledSinks = append(cfg.Logging.EnabledSinks, "json")
		cfg.Logging.JSON.FilePath = *logJSON
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatalf("%v", err)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
