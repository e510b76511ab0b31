package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"hirely.app/api/common/logger"
	"hirely.app/api/core/config"
	"hirely.app/api/core/db"
)

const usage = "usage: migrate up|down|status"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	cmd := db.MigrateCommand(os.Args[1])
	switch cmd {
	case db.MigrateUp, db.MigrateDown, db.MigrateStatus:
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg)

	slog.InfoContext(ctx, "running migrations", "command", cmd)
	if err := db.Migrate(ctx, cfg.DB.DSN, cmd); err != nil {
		slog.ErrorContext(ctx, "migration failed", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "migrations done", "command", cmd)
}
