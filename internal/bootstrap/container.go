package bootstrap

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/staffdesk-io/staffdesk/internal/config"
	"github.com/staffdesk-io/staffdesk/internal/infra/blob"
	"github.com/staffdesk-io/staffdesk/internal/infra/cache"
	"github.com/staffdesk-io/staffdesk/internal/infra/db"
	"github.com/staffdesk-io/staffdesk/internal/infra/logger"
	"github.com/staffdesk-io/staffdesk/internal/modules/handler"
	"github.com/staffdesk-io/staffdesk/internal/modules/model"
	"github.com/staffdesk-io/staffdesk/internal/modules/repo"
	"github.com/staffdesk-io/staffdesk/internal/modules/service"
	"github.com/staffdesk-io/staffdesk/internal/realtime"
	"github.com/staffdesk-io/staffdesk/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.Employee{},
				&model.Project{},
				&model.Assignment{},
				&model.AuditEntry{},
			)
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		rdb := cache.New(cfg)
		return rdb, nil
	})

	// RabbitMQ Connection
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return amqp.Dial(cfg.RabbitMQ.URL)
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewS3(context.Background(), cfg)
	})
	// get presign expire duration
	do.Provide(inj, func(i *do.Injector) (func() time.Duration, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return func() time.Duration {
			if cfg.S3.PresignExpireSec <= 0 {
				return 15 * time.Minute
			}
			return time.Duration(cfg.S3.PresignExpireSec) * time.Second
		}, nil
	})

	// Change feed
	do.Provide(inj, func(i *do.Injector) (realtime.Feed, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return realtime.NewRedisFeed(
			do.MustInvoke[*redis.Client](i),
			cfg.Realtime.ChannelPrefix,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Entity cache, one store per kind
	do.Provide(inj, func(i *do.Injector) (*store.Cache, error) {
		return store.NewCache(), nil
	})

	// Shared status channel
	do.Provide(inj, func(i *do.Injector) (*store.StatusChannel, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return store.NewStatusChannel(time.Duration(cfg.Status.ClearAfterSec) * time.Second), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.EmployeeRepo, error) {
		return repo.NewEmployeeRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.AssignmentRepo, error) {
		return repo.NewAssignmentRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.AuditRepo, error) {
		return repo.NewAuditRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.EmployeeService, error) {
		return service.NewEmployeeService(
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[repo.EmployeeRepo](i),
			do.MustInvoke[repo.AssignmentRepo](i),
			do.MustInvoke[*store.Cache](i),
			do.MustInvoke[*store.StatusChannel](i),
			do.MustInvoke[realtime.Feed](i),
			do.MustInvoke[*amqp.Connection](i),
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[func() time.Duration](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.AssignmentRepo](i),
			do.MustInvoke[*store.Cache](i),
			do.MustInvoke[*store.StatusChannel](i),
			do.MustInvoke[realtime.Feed](i),
			do.MustInvoke[*amqp.Connection](i),
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[func() time.Duration](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*service.Reconciler, error) {
		return service.NewReconciler(
			do.MustInvoke[*store.Cache](i),
			do.MustInvoke[repo.EmployeeRepo](i),
			do.MustInvoke[*store.StatusChannel](i),
			do.MustInvoke[realtime.Feed](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*service.AuditWorker, error) {
		return service.NewAuditWorker(
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*amqp.Connection](i),
			do.MustInvoke[repo.AuditRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.EmployeeHandler, error) {
		return handler.NewEmployeeHandler(do.MustInvoke[service.EmployeeService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.StatusHandler, error) {
		return handler.NewStatusHandler(do.MustInvoke[*store.StatusChannel](i)), nil
	})

	return inj
}
