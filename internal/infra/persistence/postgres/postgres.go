package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"foodcart/config"
	"foodcart/internal/domain/lifecycle"
	"foodcart/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the order store and watches its connection pool while the app runs.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Every write is a single statement upsert.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := newPoolMonitor(params.Logger, params.Config.Database)
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitor.run(monitorCtx, sqlDB.Stats)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolMonitor reports connection pool waits. A matching batch reads three tables
// while geocode writes run concurrently, so waits show up as batch latency.
type poolMonitor struct {
	logger *slog.Logger
	period time.Duration
	warnAt time.Duration
	prev   sql.DBStats
}

func newPoolMonitor(logger *slog.Logger, cfg *config.DatabaseConfig) *poolMonitor {
	m := &poolMonitor{logger: logger.With(slog.String("component", "db_pool"))}
	if cfg != nil {
		m.period = cfg.PoolMonitorPeriod
		m.warnAt = cfg.PoolWaitWarn
	}

	return m
}

func (m *poolMonitor) run(ctx context.Context, stats func() sql.DBStats) {
	if m.period <= 0 {
		return
	}

	ticker := time.NewTicker(m.period)
	defer ticker.Stop()

	m.prev = stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.observe(ctx, stats())
		}
	}
}

// observe logs the waits accumulated since the previous sample.
func (m *poolMonitor) observe(ctx context.Context, cur sql.DBStats) {
	waits := cur.WaitCount - m.prev.WaitCount
	waited := cur.WaitDuration - m.prev.WaitDuration
	m.prev = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if m.warnAt > 0 && waited >= m.warnAt {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("max_open", cur.MaxOpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
	)
}
