package main

// Apply the version-store schema:
//   go run ./cmd/migrate

import (
	"context"
	"os"

	"resume-analyzer/internal/shared/config"
	"resume-analyzer/internal/shared/storage/db"
	"resume-analyzer/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()
	_ = telemetry.SetLevel(cfg.LogLevel)

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		telemetry.Error("migrate.connect_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	telemetry.Info("migrate.complete", nil)
}
