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

	adminListBookingsHandler "github.com/sbp-team/booking-platform/internal/api/handlers/admin_list_bookings"
	adminListServicesHandler "github.com/sbp-team/booking-platform/internal/api/handlers/admin_list_services"
	cancelBookingHandler "github.com/sbp-team/booking-platform/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/sbp-team/booking-platform/internal/api/handlers/create_booking"
	createServiceHandler "github.com/sbp-team/booking-platform/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/sbp-team/booking-platform/internal/api/handlers/delete_service"
	getBookingHandler "github.com/sbp-team/booking-platform/internal/api/handlers/get_booking"
	getCurrentUserHandler "github.com/sbp-team/booking-platform/internal/api/handlers/get_current_user"
	getServiceHandler "github.com/sbp-team/booking-platform/internal/api/handlers/get_service"
	listBookingsHandler "github.com/sbp-team/booking-platform/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/sbp-team/booking-platform/internal/api/handlers/list_services"
	loginHandler "github.com/sbp-team/booking-platform/internal/api/handlers/login"
	logoutHandler "github.com/sbp-team/booking-platform/internal/api/handlers/logout"
	registerHandler "github.com/sbp-team/booking-platform/internal/api/handlers/register"
	updateBookingHandler "github.com/sbp-team/booking-platform/internal/api/handlers/update_booking"
	updateServiceHandler "github.com/sbp-team/booking-platform/internal/api/handlers/update_service"
	"github.com/sbp-team/booking-platform/internal/api/middleware"
	"github.com/sbp-team/booking-platform/internal/config"
	bookingRepo "github.com/sbp-team/booking-platform/internal/infra/storage/booking"
	serviceRepo "github.com/sbp-team/booking-platform/internal/infra/storage/service"
	tokenRepo "github.com/sbp-team/booking-platform/internal/infra/storage/token"
	userRepo "github.com/sbp-team/booking-platform/internal/infra/storage/user"
	authService "github.com/sbp-team/booking-platform/internal/service/auth"
	bookingsService "github.com/sbp-team/booking-platform/internal/service/bookings"
	catalogService "github.com/sbp-team/booking-platform/internal/service/catalog"
	createBookingUC "github.com/sbp-team/booking-platform/internal/usecase/create_booking"
	"github.com/sbp-team/booking-platform/pkg/dbmetrics"
	"github.com/sbp-team/booking-platform/pkg/logger"
	"github.com/sbp-team/booking-platform/pkg/metrics"
	"github.com/sbp-team/booking-platform/pkg/simpletxmanager"
	"github.com/sbp-team/booking-platform/pkg/txmanager"
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

	log.Info("Starting booking-platform...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

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

	// Инициализируем репозитории (с метриками или без)
	var (
		userRepository    *userRepo.Repository
		tokenRepository   *tokenRepo.Repository
		serviceRepository *serviceRepo.Repository
		bookingRepository *bookingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		userRepository = userRepo.NewRepository(wrappedDB)
		tokenRepository = tokenRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		userRepository = userRepo.NewRepository(db)
		tokenRepository = tokenRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(
		userRepository,
		tokenRepository,
		cfg.Auth.BcryptCost,
		log,
	)
	catalogSvc := catalogService.NewService(
		serviceRepository,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	getCurrentUser := getCurrentUserHandler.NewHandler(log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	adminListBookings := adminListBookingsHandler.NewHandler(bookingSvc, log)
	adminListServices := adminListServicesHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	// --- Сессия ---
	protected.HandleFunc("/logout", logout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/user", getCurrentUser.Handle).Methods(http.MethodGet)

	// --- Каталог услуг ---
	protected.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES (требуют роль admin)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin(log))

	// --- Управление каталогом ---
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Админские списки ---
	admin.HandleFunc("/admin/bookings", adminListBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/admin/services", adminListServices.Handle).Methods(http.MethodGet)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
