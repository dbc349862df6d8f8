package sim

import (
	"context"
	"sync"
	"time"

	"github.com/peggy10039/cat-village-gaming/logging"
)

// LoopConfig tunes command buffering and the fixed-timestep runner.
type LoopConfig struct {
	TickRate        int
	CommandCapacity int
}

// LoopHooks let the transport layer observe each completed step.
type LoopHooks struct {
	AfterStep func(LoopStepResult)
}

// LoopStepResult summarizes one advanced tick.
type LoopStepResult struct {
	Tick     uint64
	Now      time.Time
	Delta    float64
	Snapshot Snapshot
	Duration time.Duration
}

// Loop feeds staged commands into the world on a fixed cadence. Enqueue
// is safe from any goroutine; the world itself is touched only by Run.
type Loop struct {
	world  *World
	config LoopConfig
	hooks  LoopHooks
	clock  logging.Clock

	queueMu sync.Mutex
	queue   []Command
	dropped uint64
}

// NewLoop wraps a world with a command queue and tick runner.
func NewLoop(world *World, cfg LoopConfig, hooks LoopHooks) *Loop {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 30
	}
	if cfg.CommandCapacity <= 0 {
		cfg.CommandCapacity = 256
	}
	return &Loop{
		world:  world,
		config: cfg,
		hooks:  hooks,
		clock:  world.clock,
	}
}

// Enqueue stages a command for the next tick. It reports false when the
// buffer is saturated and the command was dropped.
func (l *Loop) Enqueue(cmd Command) bool {
	l.queueMu.Lock()
	defer l.queueMu.Unlock()
	if len(l.queue) >= l.config.CommandCapacity {
		l.dropped++
		return false
	}
	l.queue = append(l.queue, cmd)
	return true
}

// Dropped reports how many commands were rejected for backpressure.
func (l *Loop) Dropped() uint64 {
	l.queueMu.Lock()
	defer l.queueMu.Unlock()
	return l.dropped
}

func (l *Loop) drainCommands() []Command {
	l.queueMu.Lock()
	defer l.queueMu.Unlock()
	if len(l.queue) == 0 {
		return nil
	}
	commands := l.queue
	l.queue = nil
	return commands
}

// Advance executes a single step using the staged commands.
func (l *Loop) Advance(ctx context.Context, now time.Time, dt float64) LoopStepResult {
	start := l.clock.Now()
	l.world.Apply(ctx, l.drainCommands())
	l.world.Step(ctx, dt)
	return LoopStepResult{
		Tick:     l.world.Tick(),
		Now:      now,
		Delta:    dt,
		Snapshot: l.world.Snapshot(),
		Duration: l.clock.Now().Sub(start),
	}
}

// Run drives the fixed-timestep loop until the stop channel closes. The
// measured delta is clamped into the same window Step enforces, so a
// scheduler stall never tunnels entities through obstacles.
func (l *Loop) Run(ctx context.Context, stop <-chan struct{}) {
	interval := time.Second / time.Duration(l.config.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := l.clock.Now()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			now := l.clock.Now()
			dt := now.Sub(last).Seconds()
			last = now
			if dt <= 0 {
				dt = interval.Seconds()
			}

			result := l.Advance(ctx, now, dt)
			if l.hooks.AfterStep != nil {
				l.hooks.AfterStep(result)
			}
		}
	}
}
