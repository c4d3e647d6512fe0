package main

//	@title			Staffdesk API
//	@version		1.0
//	@description	API for the staffdesk admin backend.
//	@schemes		http https
//	@BasePath		/api/v1

//  Bearer session token
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session Bearer token (e.g., "Bearer sk-sd-xxxx")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/staffdesk-io/staffdesk/internal/bootstrap"
	"github.com/staffdesk-io/staffdesk/internal/config"
	"github.com/staffdesk-io/staffdesk/internal/infra/cache"
	dbpkg "github.com/staffdesk-io/staffdesk/internal/infra/db"
	"github.com/staffdesk-io/staffdesk/internal/modules/handler"
	"github.com/staffdesk-io/staffdesk/internal/modules/service"
	"github.com/staffdesk-io/staffdesk/internal/router"
	"github.com/staffdesk-io/staffdesk/internal/telemetry"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	db := do.MustInvoke[*gorm.DB](inj)
	rdb := do.MustInvoke[*redis.Client](inj)

	// Setup OpenTelemetry tracing (using configuration system)
	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if tp != nil {
		log.Sugar().Info("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := telemetry.Shutdown(ctx); err != nil {
				log.Sugar().Errorw("failed to shutdown tracer", "err", err)
			}
		}()

		// Register GORM OpenTelemetry plugin after tracer provider is set
		if err := dbpkg.RegisterOpenTelemetryPlugin(db); err != nil {
			log.Sugar().Warnw("failed to register GORM OpenTelemetry plugin, continuing without database tracing", "err", err)
		} else {
			log.Sugar().Info("GORM OpenTelemetry plugin registered")
		}

		// Register Redis OpenTelemetry plugin after tracer provider is set
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			log.Sugar().Warnw("failed to register Redis OpenTelemetry plugin, continuing without Redis tracing", "err", err)
		} else {
			log.Sugar().Info("Redis OpenTelemetry plugin registered")
		}
	}

	// init gin
	gin.SetMode(cfg.App.Env)

	// background workers: change-feed reconciler and audit drain
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	reconciler := do.MustInvoke[*service.Reconciler](inj)
	go func() {
		if err := reconciler.Run(workerCtx); err != nil {
			log.Sugar().Errorw("reconciler stopped", "err", err)
		}
	}()

	auditWorker := do.MustInvoke[*service.AuditWorker](inj)
	go func() {
		if err := auditWorker.Run(workerCtx); err != nil {
			log.Sugar().Errorw("audit worker stopped", "err", err)
		}
	}()

	// warm the caches before serving
	empSvc := do.MustInvoke[service.EmployeeService](inj)
	projSvc := do.MustInvoke[service.ProjectService](inj)
	if err := empSvc.Refresh(context.Background()); err != nil {
		log.Sugar().Warnw("initial employee fetch failed", "err", err)
	}
	if err := projSvc.Refresh(context.Background()); err != nil {
		log.Sugar().Warnw("initial project fetch failed", "err", err)
	}

	engine := router.NewRouter(router.RouterDeps{
		Config:          cfg,
		Redis:           rdb,
		Log:             log,
		EmployeeHandler: do.MustInvoke[*handler.EmployeeHandler](inj),
		ProjectHandler:  do.MustInvoke[*handler.ProjectHandler](inj),
		StatusHandler:   do.MustInvoke[*handler.StatusHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopWorkers()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
