package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hashrelay/capsolver/internal/entity"
)

func srvChallenges() []entity.Challenge {
	return DeriveChallenges(entity.ChallengeSpec{
		Token: "srv", Count: 3, SaltLength: 16, DifficultyLength: 3,
	})
}

func TestSolveAll_OrderedByIndex(t *testing.T) {
	t.Parallel()

	// Three workers solve three challenges concurrently; whichever finishes
	// first, the result slice must follow challenge index order.
	want := []int64{3323, 6401, 813}

	for _, width := range []int{1, 3, 8} {
		got, err := SolveAll(context.Background(), srvChallenges(), width, 10_000_000, nil)
		if err != nil {
			t.Fatalf("SolveAll(width=%d) error: %v", width, err)
		}
		if len(got) != len(want) {
			t.Fatalf("SolveAll(width=%d) returned %d solutions; want %d", width, len(got), len(want))
		}
		for i := range want {
			if got[i].Index != i+1 {
				t.Fatalf("SolveAll(width=%d)[%d].Index = %d; want %d", width, i, got[i].Index, i+1)
			}
			if got[i].Nonce != want[i] {
				t.Fatalf("SolveAll(width=%d)[%d].Nonce = %d; want %d", width, i, got[i].Nonce, want[i])
			}
		}
	}
}

func TestSolveAll_FailFastOnExhaustion(t *testing.T) {
	t.Parallel()

	challenges := srvChallenges()
	// The 12-bit neighbours resolve well inside 10k iterations; the injected
	// 24-bit target cannot, so it is the only one that can exhaust.
	challenges[1] = entity.Challenge{Index: 2, Salt: "436b884f7e2c5ebe", Target: "529586"}

	_, err := SolveAll(context.Background(), challenges, 2, 10_000, nil)
	if err == nil {
		t.Fatal("expected exhaustion error, got nil")
	}
	var exhausted *entity.SolveExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("error = %T (%v); want *entity.SolveExhaustedError", err, err)
	}
	if exhausted.Index != 2 {
		t.Fatalf("exhausted Index = %d; want 2", exhausted.Index)
	}
}

func TestSolveAll_ProgressFromSingleConsumer(t *testing.T) {
	t.Parallel()

	// No locking around calls: SolveAll promises the callback runs only on
	// the calling goroutine, so a plain slice is enough.
	var calls [][2]int
	_, err := SolveAll(context.Background(), srvChallenges(), 3, 10_000_000, func(completed, total int) {
		calls = append(calls, [2]int{completed, total})
	})
	if err != nil {
		t.Fatalf("SolveAll error: %v", err)
	}
	if len(calls) != 3 {
		t.Fatalf("progress called %d times; want 3", len(calls))
	}
	for i, c := range calls {
		if c[0] != i+1 || c[1] != 3 {
			t.Fatalf("progress call %d = (%d, %d); want (%d, 3)", i, c[0], c[1], i+1)
		}
	}
}

func TestSolveAll_WidthNormalizedAndEmptyInput(t *testing.T) {
	t.Parallel()

	got, err := SolveAll(context.Background(), srvChallenges()[:1], 0, 10_000_000, nil)
	if err != nil {
		t.Fatalf("SolveAll(width=0) error: %v", err)
	}
	if len(got) != 1 || got[0].Nonce != 3323 || got[0].Index != 1 {
		t.Fatalf("SolveAll(width=0) = %v; want [{1 3323}]", got)
	}

	got, err = SolveAll(context.Background(), nil, 4, 100, nil)
	if err != nil || got != nil {
		t.Fatalf("SolveAll(no challenges) = (%v, %v); want (nil, nil)", got, err)
	}
}

func TestSolveAll_ParentCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	impossible := []entity.Challenge{{Index: 1, Salt: "abc", Target: "ffffffffffff"}}
	_, err := SolveAll(ctx, impossible, 2, 1<<40, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v; want context.Canceled", err)
	}
}
