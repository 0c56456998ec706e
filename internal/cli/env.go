package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/adapters/redis"
	"github.com/aretw0/turing/pkg/calculator"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/muesli/termenv"
)

// Env bundles what every command needs: configuration, logger and output profile.
type Env struct {
	Config  config.Config
	Logger  *slog.Logger
	Profile termenv.Profile
	Debug   bool

	closers []io.Closer
}

// Setup loads the configuration at configPath and builds the logger.
// Logs reach stderr only in debug mode;
// log.file always receives JSON records.
func Setup(configPath string, debug bool) (*Env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	env := &Env{
		Config:  cfg,
		Profile: termenv.EnvColorProfile(),
		Debug:   debug,
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if debug {
		level = slog.LevelDebug
	}

	opts := logging.Options{}
	if !debug {
		opts.Writer = io.Discard
	}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		env.closers = append(env.closers, f)
		opts.JSON = f
	}
	env.Logger = logging.New(level, opts)

	return env, nil
}

// Close releases files and connections opened on behalf of the commands.
func (e *Env) Close() error {
	var first error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	e.closers = nil
	return first
}

// OpenStore builds the RunStore selected by store.backend.
// Redis connectivity is checked up front so misconfiguration fails fast.
func (e *Env) OpenStore(ctx context.Context) (ports.RunStore, error) {
	switch e.Config.Store.Backend {
	case config.BackendRedis:
		rc := e.Config.Store.Redis
		var opts []redis.Option
		if rc.Prefix != "" {
			opts = append(opts, redis.WithPrefix(rc.Prefix))
		}
		if rc.TTL > 0 {
			opts = append(opts, redis.WithTTL(rc.TTL))
		}
		store := redis.New(rc.Addr, rc.Password, rc.DB, opts...)
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, fmt.Errorf("redis store at %s: %w", rc.Addr, err)
		}
		e.closers = append(e.closers, store)
		e.Logger.Debug("Using redis run store", "addr", rc.Addr, "db", rc.DB)
		return store, nil
	default:
		e.Logger.Debug("Using in-memory run store")
		return memory.NewStore(), nil
	}
}

// NewCalculator wires a Machine with debug hooks (in debug mode) plus extra hooks.
func (e *Env) NewCalculator(store ports.RunStore, extra ...domain.LifecycleHooks) *calculator.Calculator {
	hooks := extra
	if e.Debug {
		hooks = append(hooks, createDebugHooks(e.Logger))
	}
	machine := turing.New(
		turing.WithLogger(e.Logger),
		turing.WithLifecycleHooks(observability.Combine(hooks...)),
	)

	opts := []calculator.Option{calculator.WithLogger(e.Logger)}
	if store != nil {
		opts = append(opts, calculator.WithStore(store))
	}
	return calculator.New(machine, opts...)
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(e *domain.StepEvent) {
			logger.Debug("Step",
				"table", e.Table,
				"step", e.Step,
				"state", e.State,
				"head", e.Head,
				"read", e.Read.String(),
				"transition", e.Transition.String(),
			)
		},
		OnHalt: func(e *domain.HaltEvent) {
			logger.Debug("Halt", "table", e.Table, "reason", e.Reason, "steps", e.Steps)
		},
	}
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
