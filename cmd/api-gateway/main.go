package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/examdesk-api/api/swagger"
	"github.com/noah-isme/examdesk-api/internal/content"
	"github.com/noah-isme/examdesk-api/internal/handler"
	internalmiddleware "github.com/noah-isme/examdesk-api/internal/middleware"
	"github.com/noah-isme/examdesk-api/internal/models"
	"github.com/noah-isme/examdesk-api/internal/repository"
	"github.com/noah-isme/examdesk-api/internal/service"
	"github.com/noah-isme/examdesk-api/pkg/cache"
	"github.com/noah-isme/examdesk-api/pkg/config"
	"github.com/noah-isme/examdesk-api/pkg/database"
	"github.com/noah-isme/examdesk-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/examdesk-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/examdesk-api/pkg/middleware/requestid"
)

// @title ExamDesk API
// @version 1.0.0
// @description Multi-tenant exam results, queries and dashboards for schools.
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Fatal("failed to connect redis", zap.Error(err))
	}
	defer redisClient.Close()

	pages, err := content.Pages()
	if err != nil {
		logr.Fatal("failed to load site content", zap.Error(err))
	}

	metrics := service.NewMetricsService()

	schoolRepo := repository.NewSchoolRepository(db)
	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	resultRepo := repository.NewExamResultRepository(db)
	queryRepo := repository.NewQueryRepository(db)
	pageRepo := repository.NewPageRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	pubsub := repository.NewPubSubRepository(redisClient)

	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Dashboard.CacheTTL, logr, true)
	sessionSvc := service.NewSessionService(userRepo, cacheSvc, service.SessionConfig{
		JWTSecret: cfg.Auth.JWTSecret,
		Audience:  cfg.Auth.Audience,
		CacheTTL:  cfg.Auth.SessionCacheTTL,
	}, logr)

	var dispatcher *service.NotificationDispatcher
	if cfg.Notifications.Enabled {
		dispatcher = service.NewNotificationDispatcher(pubsub, metrics, service.NotificationDispatcherConfig{
			ChannelPrefix: cfg.Notifications.ChannelPrefix,
			Workers:       cfg.Notifications.Workers,
			Retries:       cfg.Notifications.Retries,
		}, logr)
		dispatcher.Start(ctx)
		defer dispatcher.Stop()
	}

	dashCfg := service.DashboardConfig{
		CacheTTL:           cfg.Dashboard.CacheTTL,
		RecentResultsLimit: cfg.Dashboard.RecentResultsLimit,
	}
	adminSvc := service.NewAdminDashboardService(service.AdminDashboardParams{
		Schools: schoolRepo,
		Users:   userRepo,
		Results: resultRepo,
		Queries: queryRepo,
		Cache:   cacheSvc,
		Metrics: metrics,
		Logger:  logr,
		Config:  dashCfg,
	})
	teacherSvc := service.NewTeacherDashboardService(service.TeacherDashboardParams{
		Students: studentRepo,
		Results:  resultRepo,
		Queries:  queryRepo,
		Cache:    cacheSvc,
		Metrics:  metrics,
		Logger:   logr,
		Config:   dashCfg,
	})
	studentSvc := service.NewStudentDashboardService(service.StudentDashboardParams{
		Students: studentRepo,
		Results:  resultRepo,
		Queries:  queryRepo,
		Cache:    cacheSvc,
		Metrics:  metrics,
		Logger:   logr,
		Config:   dashCfg,
	})
	exportSvc := service.NewExportService(adminSvc, teacherSvc, service.ExportConfig{
		Enabled: cfg.Exports.Enabled,
		MaxRows: cfg.Exports.MaxRows,
	}, logr)
	siteSvc := service.NewSiteService(pages, pageRepo)

	dashboardHandler := handler.NewDashboardHandler(adminSvc, teacherSvc, studentSvc, dispatcher)
	exportHandler := handler.NewExportHandler(exportSvc)
	siteHandler := handler.NewSiteHandler(siteSvc)
	notificationHandler := handler.NewNotificationHandler(pubsub, dispatcher, cfg.CORS.AllowedOrigins, logr)
	metricsHandler := handler.NewMetricsHandler(metrics, map[string]handler.Pinger{
		"postgres": db.PingContext,
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metrics))
	r.Use(internalmiddleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.GET("/site/:page", siteHandler.Page)

	secured := api.Group("")
	secured.Use(internalmiddleware.Session(sessionSvc))
	{
		secured.GET("/dashboard", dashboardHandler.Dashboard)
		secured.GET("/schools/:id/pages/:name", siteHandler.SchoolPage)
		secured.GET("/notifications/ws", notificationHandler.Stream)

		admin := secured.Group("")
		admin.Use(internalmiddleware.RequireRoles(models.RoleAdmin))
		admin.GET("/dashboard/admin", dashboardHandler.Admin)
		admin.GET("/dashboard/admin/results/export", exportHandler.AdminResults)
		admin.GET("/metrics/summary", metricsHandler.Summary)

		teacher := secured.Group("")
		teacher.Use(internalmiddleware.RequireRoles(models.RoleTeacher))
		teacher.GET("/dashboard/teacher", dashboardHandler.Teacher)
		teacher.POST("/dashboard/teacher/queries/:id/response", dashboardHandler.RespondToQuery)
		teacher.GET("/dashboard/teacher/results/export", exportHandler.TeacherResults)

		student := secured.Group("")
		student.Use(internalmiddleware.RequireRoles(models.RoleStudent))
		student.GET("/dashboard/student", dashboardHandler.Student)
		student.POST("/dashboard/student/queries", dashboardHandler.SubmitQuery)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
