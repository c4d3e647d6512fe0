package db

import (
	"github.com/staffdesk-io/staffdesk/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"
)

// New opens the Postgres connection pool used as the managed row store.
func New(cfg *config.Config) (*gorm.DB, error) {
	d, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Database.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	}
	if cfg.Database.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	}

	return d, nil
}

// RegisterOpenTelemetryPlugin attaches query tracing. Call after the global
// tracer provider is set.
func RegisterOpenTelemetryPlugin(d *gorm.DB) error {
	return d.Use(tracing.NewPlugin(tracing.WithoutMetrics()))
}
