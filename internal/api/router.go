package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/tasklite/task-tracker/internal/api/handler"
	"github.com/tasklite/task-tracker/internal/api/middleware"
	"github.com/tasklite/task-tracker/internal/core/ports"
	"github.com/tasklite/task-tracker/internal/core/service"
	"github.com/tasklite/task-tracker/internal/infrastructure/db/localstore"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Every repository and service is wired against the single injected KVStore.
func NewRouter(store ports.KVStore, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tasktracker"))

	// --- Dependencies ---
	accountRepo := localstore.NewAccountRepository(store, log)
	taskRepo := localstore.NewTaskRepository(store, log)

	accountService := service.NewAccountService(accountRepo, jwtSecret, 24*time.Hour, log)
	taskService := service.NewTaskService(taskRepo, log)
	reportService := service.NewReportService(taskRepo, log)

	authHandler := handler.NewAuthHandler(accountService)
	taskHandler := handler.NewTaskHandler(taskService, reportService)
	reportHandler := handler.NewReportHandler(reportService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated routes ---
	// Token first, then the session gate: the stored single-slot session must
	// match the token subject or the request is rejected.
	authed := e.Group("", middleware.Auth(jwtSecret), middleware.RequireSession(accountRepo))
	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/auth/me", authHandler.Me)

	v1 := authed.Group("/v1")
	v1.GET("/tasks", taskHandler.List)
	v1.POST("/tasks", taskHandler.Create)
	v1.GET("/tasks/stats", taskHandler.Stats)
	v1.PATCH("/tasks/:id", taskHandler.Update)
	v1.POST("/tasks/:id/toggle", taskHandler.Toggle)
	v1.DELETE("/tasks/:id", taskHandler.Delete)
	v1.GET("/reports/weekly", reportHandler.Weekly)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(store)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is storage reachable?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
