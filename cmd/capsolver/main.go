package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashrelay/capsolver/internal/adapter/capapi"
	"github.com/hashrelay/capsolver/internal/app"
	"github.com/hashrelay/capsolver/internal/entity"
	"github.com/hashrelay/capsolver/pkg/config"
	"github.com/hashrelay/capsolver/pkg/logger"
)

func main() {
	cfg := config.Parse()
	log := logger.NewJSON(logger.LevelFromEnv(cfg.LogLevel))

	if cfg.APIBase == "" {
		log.Error("CAP_API_BASE is required")
		os.Exit(2)
	}

	client, err := capapi.New(log, capapi.Options{
		BaseURL:        cfg.APIBase,
		Origin:         cfg.Origin,
		Referer:        cfg.Referer,
		UserAgent:      cfg.UserAgent,
		TimeoutSeconds: int(cfg.HTTPTimeout.Seconds()),
	})
	if err != nil {
		log.Error("client init failed", "err", err)
		os.Exit(1)
	}

	drv := app.NewDriver(log, client, cfg.Workers, cfg.MaxIterations, nil)

	token, err := app.New(drv).Run()
	if err != nil {
		var netErr *entity.NetworkError
		var exhausted *entity.SolveExhaustedError
		switch {
		case errors.As(err, &netErr):
			log.Error("network failure, session may be retried", "op", netErr.Op, "err", err)
		case errors.As(err, &exhausted):
			log.Error("iteration bound exhausted, raise MAX_ITERATIONS or investigate a protocol mismatch",
				"challenge", exhausted.Index,
				"max_iterations", exhausted.MaxIterations,
			)
		default:
			log.Error("solve session failed", "err", err)
		}
		os.Exit(1)
	}

	fmt.Println(token)
}
