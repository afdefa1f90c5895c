package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"blog/config"
	"blog/internal/domain/lifecycle"
	"blog/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval = 5 * time.Second
	poolSlowWait        = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the blog database. The connection is verified, and the schema migrated
// when migration.auto is set, only once the application starts.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Every repository write is a single statement.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	autoMigrate := params.Config.Migration != nil && params.Config.Migration.Auto
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := prepareDatabase(ctx, params.Logger, sqlDB, autoMigrate, Migrate); err != nil {
				return err
			}

			go watchPool(monitorCtx, params.Logger, sqlDB, poolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()
			params.Logger.Info("Closing blog database")

			return sqlDB.Close()
		},
	})

	return db, nil
}

// prepareDatabase fails startup when the database is unreachable or a migration fails.
func prepareDatabase(
	ctx context.Context,
	logger *slog.Logger,
	sqlDB *sql.DB,
	autoMigrate bool,
	migrate func(context.Context, *sql.DB) error,
) error {
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	if !autoMigrate {
		logger.DebugContext(ctx, "Automatic migrations disabled")

		return nil
	}

	if err := migrate(ctx, sqlDB); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Database migrations applied")

	return nil
}

func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if level, attrs, waited := poolWaitReport(prev, cur); waited {
				logger.LogAttrs(ctx, level, "Blog database pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWaitReport describes connection waits between two pool snapshots.
// Requests that queued for a connection are reported at Debug, or at Warn once
// the added wait reaches poolSlowWait. waited is false when nobody queued.
func poolWaitReport(prev, cur sql.DBStats) (level slog.Level, attrs []slog.Attr, waited bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return slog.LevelDebug, nil, false
	}

	waitTime := cur.WaitDuration - prev.WaitDuration
	attrs = []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waitTime", waitTime),
		slog.Duration("avgWait", waitTime/time.Duration(waits)),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	}

	level = slog.LevelDebug
	if waitTime >= poolSlowWait {
		level = slog.LevelWarn
	}

	return level, attrs, true
}
