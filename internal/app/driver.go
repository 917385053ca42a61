package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/hashrelay/capsolver/internal/service"
)

const (
	defaultWorkers       = 4
	defaultMaxIterations = 10_000_000
)

// ProgressFunc receives completed/total counts as challenges finish. It is
// invoked from a single goroutine, never concurrently.
type ProgressFunc func(completed, total int)

// Driver runs one solve session through its strictly ordered stages: fetch
// the challenge parameters, derive the puzzles, solve them across the worker
// pool, redeem the nonces. Any stage failure aborts the session; a fresh
// session starts over from the fetch.
type Driver struct {
	log           *slog.Logger
	api           ChallengeAPI
	workers       int
	maxIterations int64
	onProgress    ProgressFunc
}

func NewDriver(log *slog.Logger, api ChallengeAPI, workers int, maxIterations int64, onProgress ProgressFunc) *Driver {
	if workers < 1 {
		workers = defaultWorkers
	}
	if maxIterations < 1 {
		maxIterations = defaultMaxIterations
	}
	return &Driver{
		log:           log,
		api:           api,
		workers:       workers,
		maxIterations: maxIterations,
		onProgress:    onProgress,
	}
}

// Solve performs the whole session and returns the opaque access token.
// Exactly two outbound calls are made on success, whatever the challenge
// count or pool width.
func (d *Driver) Solve(ctx context.Context) (string, error) {
	log := d.log.With("session", uuid.NewString())
	start := time.Now()

	spec, err := d.api.FetchChallenge(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch challenge: %w", err)
	}
	log.Info("challenge received",
		"count", spec.Count,
		"salt_len", spec.SaltLength,
		"difficulty_len", spec.DifficultyLength,
	)
	// The server is the authority on expiry; recorded here, not enforced.
	log.Debug("challenge expiry", "expires", spec.Expires)

	challenges := service.DeriveChallenges(spec)

	solveStart := time.Now()
	solutions, err := service.SolveAll(ctx, challenges, d.workers, d.maxIterations, func(completed, total int) {
		log.Debug("challenge solved", "completed", completed, "total", total)
		if d.onProgress != nil {
			d.onProgress(completed, total)
		}
	})
	if err != nil {
		return "", fmt.Errorf("solve: %w", err)
	}
	log.Info("all challenges solved", "count", len(solutions), "workers", d.workers, "took", time.Since(solveStart).String())

	// Redemption wants the raw nonce list in challenge order, which SolveAll
	// already guarantees.
	nonces := make([]int64, len(solutions))
	for i, sol := range solutions {
		nonces[i] = sol.Nonce
	}
	res, err := d.api.Redeem(ctx, spec.Token, nonces)
	if err != nil {
		return "", fmt.Errorf("redeem: %w", err)
	}
	log.Info("token redeemed", "took", time.Since(start).String())
	return res.Token, nil
}

// App wraps a TokenSolver with a signal-aware context for CLI use. SIGINT
// or SIGTERM cancels the in-flight session.
type App struct {
	solver TokenSolver
}

func New(solver TokenSolver) *App {
	return &App{solver: solver}
}

func (a *App) Run() (string, error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.solver.Solve(ctx)
}
