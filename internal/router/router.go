package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/staffdesk-io/staffdesk/docs"
	"github.com/staffdesk-io/staffdesk/internal/config"
	"github.com/staffdesk-io/staffdesk/internal/middleware"
	"github.com/staffdesk-io/staffdesk/internal/modules/handler"
	"github.com/staffdesk-io/staffdesk/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config          *config.Config
	Redis           *redis.Client
	Log             *zap.Logger
	EmployeeHandler *handler.EmployeeHandler
	ProjectHandler  *handler.ProjectHandler
	StatusHandler   *handler.StatusHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// Initialize logger for serializer package
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())

	// Add OpenTelemetry middleware if enabled (using configuration system)
	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		// Add trace ID to response header
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.SessionAuth(d.Config, d.Redis))

		// ping endpoint
		v1.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "pong"}) })

		v1.GET("/status", d.StatusHandler.GetStatus)
		v1.DELETE("/status", d.StatusHandler.ClearStatus)

		employees := v1.Group("/employees")
		{
			employees.GET("", d.EmployeeHandler.ListEmployees)
			employees.POST("", d.EmployeeHandler.CreateEmployee)
			employees.POST("/refresh", d.EmployeeHandler.RefreshEmployees)
			employees.GET("/search", d.EmployeeHandler.SearchEmployees)
			employees.POST("/export", d.EmployeeHandler.ExportEmployees)

			employees.PUT("/:employee_id", d.EmployeeHandler.RenameEmployee)
			employees.DELETE("/:employee_id", d.EmployeeHandler.DeleteEmployee)

			employees.PUT("/:employee_id/projects", d.EmployeeHandler.SetProjects)
			employees.DELETE("/:employee_id/projects", d.EmployeeHandler.RemoveProjects)
		}

		projects := v1.Group("/projects")
		{
			projects.GET("", d.ProjectHandler.ListProjects)
			projects.POST("", d.ProjectHandler.CreateProject)
			projects.POST("/refresh", d.ProjectHandler.RefreshProjects)
			projects.GET("/search", d.ProjectHandler.SearchProjects)
			projects.POST("/export", d.ProjectHandler.ExportProjects)

			projects.PUT("/:project_id", d.ProjectHandler.RenameProject)
			projects.DELETE("/:project_id", d.ProjectHandler.DeleteProject)

			projects.PUT("/:project_id/employees", d.ProjectHandler.SetEmployees)
			projects.DELETE("/:project_id/employees", d.ProjectHandler.RemoveEmployees)
		}
	}
	return r
}
