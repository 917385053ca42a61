package service

import (
	"context"
	"errors"

	"github.com/hashrelay/capsolver/internal/entity"
)

type poolResult struct {
	sol entity.Solution
	err error
}

// SolveAll runs every challenge across a fixed pool of width workers and
// returns the solutions ordered by challenge index, not completion order.
// Each task is pure CPU work, so the only coordination is the task channel
// and the buffered result channel the caller drains.
//
// The first hard failure cancels the pool; outstanding workers stop at their
// next cancellation check and the error is returned as-is. onProgress, when
// non-nil, is invoked only from the calling goroutine, so callers need no
// locking of their own.
func SolveAll(ctx context.Context, challenges []entity.Challenge, width int, maxIterations int64, onProgress func(completed, total int)) ([]entity.Solution, error) {
	if width < 1 {
		width = 1
	}
	total := len(challenges)
	if total == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan entity.Challenge)
	// Buffered to total so abandoned workers never block on send.
	results := make(chan poolResult, total)

	for w := 0; w < width; w++ {
		go func() {
			for ch := range tasks {
				nonce, err := SolveChallenge(ctx, ch.Salt, ch.Target, maxIterations)
				var exhausted *entity.SolveExhaustedError
				if errors.As(err, &exhausted) {
					exhausted.Index = ch.Index
				}
				results <- poolResult{sol: entity.Solution{Index: ch.Index, Nonce: nonce}, err: err}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, ch := range challenges {
			select {
			case tasks <- ch:
			case <-ctx.Done():
				return
			}
		}
	}()

	solutions := make([]entity.Solution, total)
	for completed := 0; completed < total; {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res := <-results:
			if res.err != nil {
				cancel()
				return nil, res.err
			}
			solutions[res.sol.Index-1] = res.sol
			completed++
			if onProgress != nil {
				onProgress(completed, total)
			}
		}
	}
	return solutions, nil
}
