package app

import (
	"context"

	"github.com/hashrelay/capsolver/internal/entity"
)

//go:generate mockgen -source=interfaces.go -destination=./app_mock.go -package=app

// ChallengeAPI is the remote endpoint pair the driver consumes: one fetch
// and one redeem per session.
type ChallengeAPI interface {
	FetchChallenge(ctx context.Context) (entity.ChallengeSpec, error)
	Redeem(ctx context.Context, token string, nonces []int64) (entity.RedemptionResult, error)
}

// TokenSolver is the surface exposed to the external orchestrator.
type TokenSolver interface {
	Solve(ctx context.Context) (string, error)
}
