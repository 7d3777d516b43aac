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

	adminBookingsHandler "github.com/cst-sportspot/booking-service/internal/api/handlers/admin_bookings"
	adminStatsHandler "github.com/cst-sportspot/booking-service/internal/api/handlers/admin_stats"
	adminUsersHandler "github.com/cst-sportspot/booking-service/internal/api/handlers/admin_users"
	adminVenuesHandler "github.com/cst-sportspot/booking-service/internal/api/handlers/admin_venues"
	authHandler "github.com/cst-sportspot/booking-service/internal/api/handlers/auth"
	bookingStatsHandler "github.com/cst-sportspot/booking-service/internal/api/handlers/booking_stats"
	cancelBookingHandler "github.com/cst-sportspot/booking-service/internal/api/handlers/cancel_booking"
	checkSlotHandler "github.com/cst-sportspot/booking-service/internal/api/handlers/check_slot_availability"
	createBookingHandler "github.com/cst-sportspot/booking-service/internal/api/handlers/create_booking"
	getBookingHandler "github.com/cst-sportspot/booking-service/internal/api/handlers/get_booking"
	dayAvailabilityHandler "github.com/cst-sportspot/booking-service/internal/api/handlers/get_day_availability"
	getUserBookingsHandler "github.com/cst-sportspot/booking-service/internal/api/handlers/get_user_bookings"
	profileHandler "github.com/cst-sportspot/booking-service/internal/api/handlers/profile"
	venuesHandler "github.com/cst-sportspot/booking-service/internal/api/handlers/venues"
	"github.com/cst-sportspot/booking-service/internal/api/middleware"
	"github.com/cst-sportspot/booking-service/internal/config"
	"github.com/cst-sportspot/booking-service/internal/events"
	bookingRepo "github.com/cst-sportspot/booking-service/internal/infra/storage/booking"
	userRepo "github.com/cst-sportspot/booking-service/internal/infra/storage/user"
	venueRepo "github.com/cst-sportspot/booking-service/internal/infra/storage/venue"
	bookingsService "github.com/cst-sportspot/booking-service/internal/service/bookings"
	usersService "github.com/cst-sportspot/booking-service/internal/service/users"
	venuesService "github.com/cst-sportspot/booking-service/internal/service/venues"
	checkSlotUC "github.com/cst-sportspot/booking-service/internal/usecase/check_slot_availability"
	createBookingUC "github.com/cst-sportspot/booking-service/internal/usecase/create_booking"
	dayAvailabilityUC "github.com/cst-sportspot/booking-service/internal/usecase/get_day_availability"
	"github.com/cst-sportspot/booking-service/pkg/authtoken"
	"github.com/cst-sportspot/booking-service/pkg/logger"
	"github.com/cst-sportspot/booking-service/pkg/metrics"
	"github.com/cst-sportspot/booking-service/pkg/txmanager"
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

	log.Info("Starting SportSpot booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBStats(db, 15*time.Second, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Менеджер токенов доступа
	tokenManager, err := authtoken.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMin)*time.Minute)
	if err != nil {
		log.Fatal("Failed to initialize token manager: %v", err)
	}

	// Публикация событий бронирований
	var publisher events.Publisher
	if cfg.Events.Enabled {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		publisher = amqpPublisher
		log.Info("Event publisher connected (exchange=%s)", cfg.Events.Exchange)
	} else {
		publisher = events.NopPublisher{}
		log.Info("Event publishing disabled")
	}
	defer publisher.Close()

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	venueRepository := venueRepo.NewRepository(db)
	userRepository := userRepo.NewRepository(db)
	txManager := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		userRepository,
		venueRepository,
		publisher,
		log,
	)
	venueSvc := venuesService.NewService(venueRepository, bookingRepository, log)
	userSvc := usersService.NewService(userRepository, tokenManager, log)

	// Инициализируем use cases
	checkSlotUseCase := checkSlotUC.NewUseCase(bookingRepository, venueRepository, log)
	dayAvailabilityUseCase := dayAvailabilityUC.NewUseCase(bookingRepository, venueRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		venueRepository,
		txManager,
		publisher,
		log,
	)

	// Инициализируем handlers
	dayAvailability := dayAvailabilityHandler.NewHandler(dayAvailabilityUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(checkSlotUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	bookingStats := bookingStatsHandler.NewHandler(bookingSvc, log)
	venuesPublic := venuesHandler.NewHandler(venueSvc, log)
	authH := authHandler.NewHandler(userSvc, log)
	profileH := profileHandler.NewHandler(userSvc, log)
	adminBookings := adminBookingsHandler.NewHandler(bookingSvc, log)
	adminVenues := adminVenuesHandler.NewHandler(venueSvc, log)
	adminUsers := adminUsersHandler.NewHandler(userSvc, log)
	adminStats := adminStatsHandler.NewHandler(bookingSvc, log)

	authMiddleware := middleware.NewAuth(tokenManager, userSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Аутентификация
	api.HandleFunc("/auth/register", authH.HandleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authH.HandleLogin).Methods(http.MethodPost)

	// Каталог площадок
	api.HandleFunc("/venues", venuesPublic.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}", venuesPublic.HandleGet).Methods(http.MethodGet)

	// Отчет о занятости за день
	api.HandleFunc("/venues/{venueId}/calendar-availability",
		dayAvailability.Handle).Methods(http.MethodGet)

	// Проверка доступности конкретного слота
	api.HandleFunc("/venues/{venueId}/calendar-availability",
		checkSlot.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMiddleware.Require)

	// Проверка токена
	protected.HandleFunc("/auth/verify", authH.HandleVerify).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/stats", bookingStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Профиль ---
	protected.HandleFunc("/profile", profileH.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/profile", profileH.HandleUpdate).Methods(http.MethodPut)

	// ============================================================
	// ADMIN ROUTES (Bearer токен + роль admin)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware.RequireAdmin)

	// Бронирования
	admin.HandleFunc("/bookings", adminBookings.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/repair-venue-names", adminBookings.HandleRepairVenueNames).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}/status", adminBookings.HandleUpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}", adminBookings.HandleDelete).Methods(http.MethodDelete)

	// Площадки
	admin.HandleFunc("/venues", adminVenues.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/venues/{venueId}", adminVenues.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/venues/{venueId}", adminVenues.HandleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/venues/{venueId}/blocked-slots", adminVenues.HandleBlockSlot).Methods(http.MethodPost)
	admin.HandleFunc("/venues/{venueId}/blocked-slots/{slotId}", adminVenues.HandleUnblockSlot).Methods(http.MethodDelete)

	// Пользователи и статистика
	admin.HandleFunc("/users", adminUsers.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/stats", adminStats.Handle).Methods(http.MethodGet)

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
