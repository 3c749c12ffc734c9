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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	closeShiftHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/close_shift"
	getShiftSummaryHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/get_shift_summary"
	getWorkerReservationsHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/get_worker_reservations"
	listServicesHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/list_services"
	openShiftHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/open_shift"
	updateReservationStatusHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/SMC-ShiftService/internal/api/middleware"
	"github.com/m04kA/SMC-ShiftService/internal/config"
	catalogRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/catalog"
	reservationRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/reservation"
	shiftRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/shift"
	"github.com/m04kA/SMC-ShiftService/internal/integrations/principal"
	pricingService "github.com/m04kA/SMC-ShiftService/internal/service/pricing"
	reservationsService "github.com/m04kA/SMC-ShiftService/internal/service/reservations"
	shiftsService "github.com/m04kA/SMC-ShiftService/internal/service/shifts"
	closeShiftUC "github.com/m04kA/SMC-ShiftService/internal/usecase/close_shift"
	"github.com/m04kA/SMC-ShiftService/pkg/dayclock"
	"github.com/m04kA/SMC-ShiftService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShiftService/pkg/logger"
	"github.com/m04kA/SMC-ShiftService/pkg/metrics"
	"github.com/m04kA/SMC-ShiftService/pkg/txmanager"
)

func main() {
	configPath := pflag.StringP("config", "c", "config.toml", "path to TOML config")
	pflag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-ShiftService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Каноническая зона рабочего дня
	clock, err := dayclock.Load(cfg.Workday.Timezone)
	if err != nil {
		log.Fatal("Failed to load workday timezone: %v", err)
	}
	log.Info("Workday timezone: %s", clock.Location())

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopBackgroundCh := make(chan struct{})

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

	// Без метрик обертка просто проксирует запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopBackgroundCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем резолвер сотрудника
	var resolver middleware.PrincipalResolver
	switch cfg.Auth.Mode {
	case config.AuthModeJWT:
		resolver, err = principal.NewJWTResolver(cfg.Auth.JWTSecret, cfg.Auth.WorkerRole)
		if err != nil {
			log.Fatal("Failed to initialize JWT resolver: %v", err)
		}
	default:
		resolver = principal.NewHeaderResolver()
	}
	log.Info("Worker authentication mode: %s", cfg.Auth.Mode)

	// Инициализируем репозитории
	shiftRepository := shiftRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	pricingSvc := pricingService.NewService(catalogRepository, log)
	ledgerSvc := reservationsService.NewService(reservationRepository, txMgr, clock, log)
	shiftsSvc := shiftsService.NewService(shiftRepository, ledgerSvc, clock, log)

	// Инициализируем use cases
	closeShiftUseCase := closeShiftUC.NewUseCase(
		shiftRepository,
		ledgerSvc,
		pricingSvc,
		txMgr,
		clock,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	openShift := openShiftHandler.NewHandler(shiftsSvc, log)
	closeShift := closeShiftHandler.NewHandler(closeShiftUseCase, log)
	getShiftSummary := getShiftSummaryHandler.NewHandler(shiftsSvc, log)
	getWorkerReservations := getWorkerReservationsHandler.NewHandler(ledgerSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(ledgerSvc, log)
	listServices := listServicesHandler.NewHandler(pricingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.HTTPMetrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, 10*time.Minute)
		go limiter.Cleanup(time.Minute, stopBackgroundCh)
		r.Use(limiter.Middleware(log))
		log.Info("Rate limit enabled: rps=%.1f, burst=%d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг с текущими ценами
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// ============================================================
	// WORKER ROUTES (требуют аутентифицированного сотрудника)
	// ============================================================

	worker := api.PathPrefix("/worker").Subrouter()
	worker.Use(middleware.WorkerAuth(resolver, log))

	// --- Смена ---
	worker.HandleFunc("/shift/open", openShift.Handle).Methods(http.MethodPost)
	worker.HandleFunc("/shift/close", closeShift.Handle).Methods(http.MethodPost)
	worker.HandleFunc("/shift/summary", getShiftSummary.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	worker.HandleFunc("/reservations", getWorkerReservations.Handle).Methods(http.MethodGet)
	worker.HandleFunc("/reservations/{reservationId}/status",
		updateReservationStatus.Handle).Methods(http.MethodPatch)

	var handler http.Handler = r
	if len(cfg.CORS.AllowedOrigins) > 0 {
		handler = middleware.CORS(middleware.CORSConfig{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			MaxAge:         cfg.CORS.MaxAge,
		})(r)
		log.Info("CORS enabled for origins: %v", cfg.CORS.AllowedOrigins)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор статистики pool и очистку rate limiter
	close(stopBackgroundCh)

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
