package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"foodcart/config"
	"foodcart/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormSlogLogger routes GORM statements to slog. Failed and slow statements are
// always logged, every statement only in debug mode.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
	maxSQLLength  int
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{
		logger: baseLogger.With(slog.String("component", "gorm")),
		level:  logger.Warn,
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Database != nil {
		l.slowThreshold = cfg.Database.SlowQueryThreshold
		l.maxSQLLength = cfg.Database.MaxLoggedSQLLength
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) logf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}

	l.logger.LogAttrs(ctx, level, "GORM message", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, extra, ok := l.classify(elapsed, err)
	if !ok {
		return
	}

	query, rows := sqlAndRowsFn()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", l.truncate(query)),
	}, extra...)

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

// classify decides whether and how a finished statement is logged.
// A missing row is how repositories detect cache misses, so it is not an error here.
func (l *gormSlogLogger) classify(elapsed time.Duration, err error) (slog.Level, string, []slog.Attr, bool) {
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		return slog.LevelError, "GORM query failed", []slog.Attr{slog.String("error", err.Error())}, true
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		return slog.LevelWarn, "GORM slow query", []slog.Attr{slog.Duration("slow_threshold", l.slowThreshold)}, true
	case l.level >= logger.Info:
		return slog.LevelDebug, "GORM query", nil, true
	default:
		return 0, "", nil, false
	}
}

func (l *gormSlogLogger) truncate(query string) string {
	if l.maxSQLLength <= 0 || len(query) <= l.maxSQLLength {
		return query
	}

	return query[:l.maxSQLLength] + "... (" + strconv.Itoa(len(query)) + " bytes)"
}
