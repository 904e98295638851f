package db

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// gormZapLogger routes GORM's query log into zap. Record-not-found is not an error here.
type gormZapLogger struct {
	log           *zap.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func NewGormLogger(log *zap.Logger, slowThreshold time.Duration) gormlogger.Interface {
	return &gormZapLogger{
		log:           log.Named("gorm"),
		level:         gormlogger.Warn,
		slowThreshold: slowThreshold,
	}
}

func (logger *gormZapLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	copied := *logger
	copied.level = level
	return &copied
}

func (logger *gormZapLogger) Info(_ context.Context, message string, args ...any) {
	if logger.level >= gormlogger.Info {
		logger.log.Sugar().Infof(message, args...)
	}
}

func (logger *gormZapLogger) Warn(_ context.Context, message string, args ...any) {
	if logger.level >= gormlogger.Warn {
		logger.log.Sugar().Warnf(message, args...)
	}
}

func (logger *gormZapLogger) Error(_ context.Context, message string, args ...any) {
	if logger.level >= gormlogger.Error {
		logger.log.Sugar().Errorf(message, args...)
	}
}

func (logger *gormZapLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if logger.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && logger.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		logger.log.Error("query failed", zap.Error(err), zap.Duration("elapsed", elapsed), zap.Int64("rows", rows), zap.String("sql", sql))
	case logger.slowThreshold > 0 && elapsed > logger.slowThreshold && logger.level >= gormlogger.Warn:
		sql, rows := fc()
		logger.log.Warn("slow query", zap.Duration("elapsed", elapsed), zap.Int64("rows", rows), zap.String("sql", sql))
	case logger.level >= gormlogger.Info:
		sql, rows := fc()
		logger.log.Debug("query", zap.Duration("elapsed", elapsed), zap.Int64("rows", rows), zap.String("sql", sql))
	}
}
