package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/eywa-crm/EYWA-ScheduleService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/eywa-crm/EYWA-ScheduleService/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/eywa-crm/EYWA-ScheduleService/internal/api/handlers/get_booking"
	getDashboardSummaryHandler "github.com/eywa-crm/EYWA-ScheduleService/internal/api/handlers/get_dashboard_summary"
	getScheduleAnalyticsHandler "github.com/eywa-crm/EYWA-ScheduleService/internal/api/handlers/get_schedule_analytics"
	listBookingsHandler "github.com/eywa-crm/EYWA-ScheduleService/internal/api/handlers/list_bookings"
	updateBookingHandler "github.com/eywa-crm/EYWA-ScheduleService/internal/api/handlers/update_booking"
	"github.com/eywa-crm/EYWA-ScheduleService/internal/api/middleware"
	"github.com/eywa-crm/EYWA-ScheduleService/internal/api/validation"
	"github.com/eywa-crm/EYWA-ScheduleService/internal/config"
	bookingRepo "github.com/eywa-crm/EYWA-ScheduleService/internal/infra/storage/booking"
	clientsRepo "github.com/eywa-crm/EYWA-ScheduleService/internal/infra/storage/clients"
	dashboardRepo "github.com/eywa-crm/EYWA-ScheduleService/internal/infra/storage/dashboard"
	paymentsRepo "github.com/eywa-crm/EYWA-ScheduleService/internal/infra/storage/payments"
	analyticsService "github.com/eywa-crm/EYWA-ScheduleService/internal/service/analytics"
	dashboardService "github.com/eywa-crm/EYWA-ScheduleService/internal/service/dashboard"
	scheduleService "github.com/eywa-crm/EYWA-ScheduleService/internal/service/schedule"
	"github.com/eywa-crm/EYWA-ScheduleService/pkg/logger"
	"github.com/eywa-crm/EYWA-ScheduleService/pkg/metrics"
	"github.com/eywa-crm/EYWA-ScheduleService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting EYWA-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	paymentsRepository := paymentsRepo.NewRepository(db)
	clientsRepository := clientsRepo.NewRepository(db)
	dashboardRepository := dashboardRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(bookingRepository, txMgr, log)
	analyticsSvc := analyticsService.NewService(bookingRepository, log)
	dashboardSvc := dashboardService.NewService(
		bookingRepository,
		paymentsRepository,
		clientsRepository,
		dashboardRepository,
		analyticsSvc,
		log,
	)

	// Инициализируем валидатор входных моделей
	validate, err := validation.New()
	if err != nil {
		log.Fatal("Failed to initialize validator: %v", err)
	}

	// Инициализируем handlers
	listBookings := listBookingsHandler.NewHandler(scheduleSvc, log)
	getBooking := getBookingHandler.NewHandler(scheduleSvc, log)
	createBooking := createBookingHandler.NewHandler(scheduleSvc, validate, log)
	updateBooking := updateBookingHandler.NewHandler(scheduleSvc, validate, log)
	deleteBooking := deleteBookingHandler.NewHandler(scheduleSvc, log)
	getScheduleAnalytics := getScheduleAnalyticsHandler.NewHandler(analyticsSvc, log)
	getDashboardSummary := getDashboardSummaryHandler.NewHandler(dashboardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Чтение расписания и аналитики доступно без аутентификации
	api.HandleFunc("/schedule/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/analytics", getScheduleAnalytics.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/summary", getDashboardSummary.Handle).Methods(http.MethodGet)

	// Мутации требуют X-User-ID header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/schedule/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/schedule/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
