// Package app assembles the server: logging router, save store, world,
// tick loop, and the HTTP/WebSocket surface.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	appnet "github.com/peggy10039/cat-village-gaming/internal/net"
	"github.com/peggy10039/cat-village-gaming/internal/sim"
	"github.com/peggy10039/cat-village-gaming/internal/store"
	"github.com/peggy10039/cat-village-gaming/logging"
	loggingsinks "github.com/peggy10039/cat-village-gaming/logging/sinks"
)

// Config is the server's startup configuration, resolved from flags and
// environment by the entrypoint.
type Config struct {
	Addr     string
	Seed     string
	TickRate int

	StoreBackend string // memory | redis | postgres
	RedisAddr    string
	PostgresDSN  string

	Logging logging.Config
}

// DefaultConfig matches a local development run: in-memory persistence
// and console logging.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		Seed:         sim.DefaultSeed,
		TickRate:     30,
		StoreBackend: "memory",
		RedisAddr:    "localhost:6379",
		Logging:      logging.DefaultConfig(),
	}
}

// Run assembles and serves until the context is cancelled.
func Run(ctx context.Context, cfg Config) error {
	router := logging.NewRouter(logging.SystemClock{}, cfg.Logging, buildSinks(cfg.Logging))
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := router.Close(closeCtx); err != nil {
			log.Printf("failed to close logging router: %v", err)
		}
	}()

	st, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	worldCfg := sim.DefaultConfig()
	worldCfg.Seed = cfg.Seed
	world := sim.New(ctx, worldCfg, sim.Deps{Publisher: router, Store: st})

	// The hub needs the loop and the loop's hook needs the hub; the
	// closure bridges the cycle and only fires once the loop runs.
	var hub *appnet.Hub
	loop := sim.NewLoop(world, sim.LoopConfig{TickRate: cfg.TickRate}, sim.LoopHooks{
		AfterStep: func(result sim.LoopStepResult) { hub.AfterStep(result) },
	})
	hub = appnet.NewHub(world, loop, cfg.TickRate)

	stop := make(chan struct{})
	go loop.Run(ctx, stop)
	defer close(stop)

	mux := http.NewServeMux()
	hub.Routes(mux)

	srv := &http.Server{Addr: cfg.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("server listening on %s (seed=%q store=%s)", cfg.Addr, cfg.Seed, cfg.StoreBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func buildSinks(cfg logging.Config) []logging.NamedSink {
	sinks := make([]logging.NamedSink, 0, len(cfg.EnabledSinks))
	for _, name := range cfg.EnabledSinks {
		switch name {
		case "console":
			sinks = append(sinks, logging.NamedSink{Name: name, Sink: loggingsinks.NewConsoleSink(os.Stdout)})
		case "json":
			sink, err := loggingsinks.NewJSONSink(cfg.JSON)
			if err != nil {
				log.Printf("skipping json sink: %v", err)
				continue
			}
			sinks = append(sinks, logging.NamedSink{Name: name, Sink: sink})
		case "memory":
			sinks = append(sinks, logging.NamedSink{Name: name, Sink: loggingsinks.NewMemorySink()})
		default:
			log.Printf("unknown logging sink %q", name)
		}
	}
	return sinks
}

func buildStore(ctx context.Context, cfg Config) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case "", "memory":
		return store.NewMemoryStore(), nil, nil
	case "redis":
		rs := store.NewRedisStore(cfg.RedisAddr)
		if err := rs.Ping(ctx); err != nil {
			rs.Close()
			return nil, nil, fmt.Errorf("connect redis store: %w", err)
		}
		return rs, func() { rs.Close() }, nil
	case "postgres":
		ps, err := store.NewPostgresStore(cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres store: %w", err)
		}
		return ps, nil, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
