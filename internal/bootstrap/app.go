package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"resume-analyzer/internal/analyses"
	"resume-analyzer/internal/shared/config"
	"resume-analyzer/internal/shared/server"
	"resume-analyzer/internal/shared/storage/db"
	"resume-analyzer/internal/shared/telemetry"
	"resume-analyzer/internal/versions"
	"resume-analyzer/resume/engine"
	"resume-analyzer/resume/taxonomy"
)

// App holds shared dependencies.
type App struct {
	Config    config.Config
	Router    *gin.Engine
	DB        *sql.DB
	Redis     *redis.Client
	Store     versions.Store
	StoreName string
	Engine    *engine.Engine
	Service   *analyses.Service
	Handler   *analyses.Handler
}

// Build prepares dependencies and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if err := telemetry.SetLevel(cfg.LogLevel); err != nil {
		telemetry.Warn("bootstrap.log_level_invalid", map[string]any{"level": cfg.LogLevel})
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, Engine: eng}
	if err := buildStore(ctx, app); err != nil {
		return nil, err
	}

	app.Service = analyses.NewService(app.Engine, app.Store, app.StoreName)
	app.Handler = analyses.NewHandler(app.Service)
	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		AnalysisHandler: app.Handler,
	})
	telemetry.Info("bootstrap.ready", map[string]any{
		"env":              cfg.Env,
		"store":            app.StoreName,
		"taxonomy_version": eng.Taxonomy().Version(),
	})
	return app, nil
}

// Close releases store connections.
func (a *App) Close() error {
	var firstErr error
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			firstErr = err
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func buildEngine(cfg config.Config) (*engine.Engine, error) {
	path := strings.TrimSpace(cfg.TaxonomyFile)
	if path == "" {
		return engine.New(), nil
	}
	tax, err := taxonomy.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}
	return engine.New(engine.WithTaxonomy(tax)), nil
}

func buildStore(ctx context.Context, app *App) error {
	cfg := app.Config
	var err error
	switch cfg.VersionStore {
	case config.StorePostgres:
		err = buildPGStore(ctx, app)
	case config.StoreRedis:
		err = buildRedisStore(ctx, app)
	case config.StoreMemory, "":
		if !cfg.IsDevLike() {
			return fmt.Errorf("ENV=%s requires a persistent VERSION_STORE (postgres or redis)", cfg.Env)
		}
		useMemory(app)
		return nil
	default:
		return fmt.Errorf("unknown VERSION_STORE %q", cfg.VersionStore)
	}
	if err == nil {
		return nil
	}
	if !cfg.IsDevLike() {
		return err
	}
	telemetry.Warn("bootstrap.store_fallback", map[string]any{
		"store": cfg.VersionStore,
		"error": err.Error(),
	})
	useMemory(app)
	return nil
}

func useMemory(app *App) {
	app.Store = versions.NewMemoryStore()
	app.StoreName = config.StoreMemory
}

func buildPGStore(ctx context.Context, app *App) error {
	if strings.TrimSpace(app.Config.DatabaseURL) == "" {
		return fmt.Errorf("VERSION_STORE=postgres requires DATABASE_URL")
	}
	sqlDB, err := db.Connect(ctx, app.Config.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		return err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return fmt.Errorf("run migrations: %w", err)
	}
	app.DB = sqlDB
	app.Store = versions.NewPGStore(sqlDB)
	app.StoreName = config.StorePostgres
	return nil
}

func buildRedisStore(ctx context.Context, app *App) error {
	if strings.TrimSpace(app.Config.RedisAddr) == "" {
		return fmt.Errorf("VERSION_STORE=redis requires REDIS_ADDR")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     app.Config.RedisAddr,
		Password: app.Config.RedisPassword,
		DB:       app.Config.RedisDB,
	})
	store, err := versions.NewRedisStore(ctx, client, app.Config.RedisKeyPrefix)
	if err != nil {
		client.Close()
		return err
	}
	app.Redis = client
	app.Store = store
	app.StoreName = config.StoreRedis
	return nil
}
