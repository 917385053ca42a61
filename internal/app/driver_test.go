package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/hashrelay/capsolver/internal/entity"
)

func loggerSilent() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// The srv token with s=16, d=3 derives three 12-bit challenges whose
// smallest nonces are fixed by the algorithm: 3323, 6401, 813.
var srvSpec = entity.ChallengeSpec{
	Token: "srv", Count: 3, SaltLength: 16, DifficultyLength: 3,
}

func TestSolve_HappyPath_RedeemsInIndexOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockChallengeAPI(ctrl)
	gomock.InOrder(
		api.EXPECT().FetchChallenge(gomock.Any()).Return(srvSpec, nil),
		api.EXPECT().
			Redeem(gomock.Any(), "srv", []int64{3323, 6401, 813}).
			Return(entity.RedemptionResult{Success: true, Token: "powt-token"}, nil),
	)

	var progress [][2]int
	d := NewDriver(loggerSilent(), api, 3, 0, func(completed, total int) {
		progress = append(progress, [2]int{completed, total})
	})

	token, err := d.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if token != "powt-token" {
		t.Fatalf("Solve() = %q; want %q", token, "powt-token")
	}

	if len(progress) != 3 {
		t.Fatalf("progress called %d times; want 3", len(progress))
	}
	if last := progress[len(progress)-1]; last != [2]int{3, 3} {
		t.Fatalf("final progress = %v; want [3 3]", last)
	}
}

func TestSolve_FetchFailure_SkipsSolveAndRedeem(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockChallengeAPI(ctrl)
	api.EXPECT().
		FetchChallenge(gomock.Any()).
		Return(entity.ChallengeSpec{}, &entity.NetworkError{Op: "challenge", Err: errors.New("timeout")})
	// Redeem must never be called.

	d := NewDriver(loggerSilent(), api, 2, 1000, nil)
	_, err := d.Solve(context.Background())

	var ne *entity.NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("Solve() error = %v; want *entity.NetworkError", err)
	}
}

func TestSolve_Exhausted_NoPartialRedemption(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// d=6 means a 24-bit prefix; a 10-iteration budget cannot find it.
	spec := entity.ChallengeSpec{Token: "srv", Count: 1, SaltLength: 16, DifficultyLength: 6}

	api := NewMockChallengeAPI(ctrl)
	api.EXPECT().FetchChallenge(gomock.Any()).Return(spec, nil)
	// Redeem must never be called.

	d := NewDriver(loggerSilent(), api, 2, 10, nil)
	_, err := d.Solve(context.Background())

	var exhausted *entity.SolveExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Solve() error = %v; want *entity.SolveExhaustedError", err)
	}
	if exhausted.Index != 1 {
		t.Fatalf("exhausted Index = %d; want 1", exhausted.Index)
	}
}

func TestSolve_RedemptionDeclined(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockChallengeAPI(ctrl)
	api.EXPECT().FetchChallenge(gomock.Any()).Return(srvSpec, nil)
	api.EXPECT().
		Redeem(gomock.Any(), "srv", gomock.Any()).
		Return(entity.RedemptionResult{}, &entity.RedemptionError{Reason: "server rejected the solutions"})

	d := NewDriver(loggerSilent(), api, 4, 0, nil)
	_, err := d.Solve(context.Background())

	var re *entity.RedemptionError
	if !errors.As(err, &re) {
		t.Fatalf("Solve() error = %v; want *entity.RedemptionError", err)
	}
}

func TestSolve_CanceledContext(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockChallengeAPI(ctrl)
	api.EXPECT().FetchChallenge(gomock.Any()).Return(srvSpec, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDriver(loggerSilent(), api, 2, 0, nil)
	_, err := d.Solve(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Solve() error = %v; want context.Canceled", err)
	}
}

func TestNewDriver_Defaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := NewDriver(loggerSilent(), NewMockChallengeAPI(ctrl), 0, 0, nil)
	if d.workers != defaultWorkers {
		t.Fatalf("workers = %d; want %d", d.workers, defaultWorkers)
	}
	if d.maxIterations != defaultMaxIterations {
		t.Fatalf("maxIterations = %d; want %d", d.maxIterations, defaultMaxIterations)
	}
}
