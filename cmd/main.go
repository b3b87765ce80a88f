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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/AGIA-RentalService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/AGIA-RentalService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/AGIA-RentalService/internal/api/handlers/create_booking"
	createReviewHandler "github.com/m04kA/AGIA-RentalService/internal/api/handlers/create_review"
	createVillaHandler "github.com/m04kA/AGIA-RentalService/internal/api/handlers/create_villa"
	deleteVillaHandler "github.com/m04kA/AGIA-RentalService/internal/api/handlers/delete_villa"
	generateDescriptionHandler "github.com/m04kA/AGIA-RentalService/internal/api/handlers/generate_description"
	getBookingHandler "github.com/m04kA/AGIA-RentalService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/AGIA-RentalService/internal/api/handlers/get_user_bookings"
	getVillaHandler "github.com/m04kA/AGIA-RentalService/internal/api/handlers/get_villa"
	listReviewsHandler "github.com/m04kA/AGIA-RentalService/internal/api/handlers/list_reviews"
	listVillasHandler "github.com/m04kA/AGIA-RentalService/internal/api/handlers/list_villas"
	loginHandler "github.com/m04kA/AGIA-RentalService/internal/api/handlers/login"
	updateVillaHandler "github.com/m04kA/AGIA-RentalService/internal/api/handlers/update_villa"
	"github.com/m04kA/AGIA-RentalService/internal/api/middleware"
	"github.com/m04kA/AGIA-RentalService/internal/config"
	bookingRepo "github.com/m04kA/AGIA-RentalService/internal/infra/storage/booking"
	reviewRepo "github.com/m04kA/AGIA-RentalService/internal/infra/storage/review"
	userRepo "github.com/m04kA/AGIA-RentalService/internal/infra/storage/user"
	villaRepo "github.com/m04kA/AGIA-RentalService/internal/infra/storage/villa"
	genaiClient "github.com/m04kA/AGIA-RentalService/internal/integrations/genai"
	bookingsService "github.com/m04kA/AGIA-RentalService/internal/service/bookings"
	reviewsService "github.com/m04kA/AGIA-RentalService/internal/service/reviews"
	usersService "github.com/m04kA/AGIA-RentalService/internal/service/users"
	villasService "github.com/m04kA/AGIA-RentalService/internal/service/villas"
	checkAvailabilityUC "github.com/m04kA/AGIA-RentalService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/AGIA-RentalService/internal/usecase/create_booking"
	"github.com/m04kA/AGIA-RentalService/migrations"
	"github.com/m04kA/AGIA-RentalService/pkg/dbmetrics"
	"github.com/m04kA/AGIA-RentalService/pkg/logger"
	"github.com/m04kA/AGIA-RentalService/pkg/metrics"
	"github.com/m04kA/AGIA-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/AGIA-RentalService/pkg/txmanager"
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

	log.Info("Starting AGIA-RentalService...")
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

	// Накатываем миграции из встроенных файлов
	goose.SetBaseFS(migrations.MigrationFiles)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем клиент генерации описаний
	genAI := genaiClient.NewClient(
		cfg.GenAI.BaseURL,
		cfg.GenAI.Model,
		cfg.GenAI.APIKey,
		time.Duration(cfg.GenAI.Timeout)*time.Second,
		log,
	)
	if genAI.IsConfigured() {
		log.Info("GenAI client initialized (model=%s, timeout=%ds)", cfg.GenAI.Model, cfg.GenAI.Timeout)
	} else {
		log.Warn("GenAI API key is not set, description generation is disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		villaRepository   *villaRepo.Repository
		userRepository    *userRepo.Repository
		reviewRepository  *reviewRepo.Repository
	)

	// Интерфейс transaction manager, общий для обеих реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		villaRepository = villaRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		villaRepository = villaRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, userRepository, log)
	villaSvc := villasService.NewService(villaRepository, userRepository, log)
	userSvc := usersService.NewService(userRepository, log)
	reviewSvc := reviewsService.NewService(reviewRepository, bookingRepository, userRepository, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, villaRepository, txMgr, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(bookingRepository, villaRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listVillas := listVillasHandler.NewHandler(villaSvc, log)
	getVilla := getVillaHandler.NewHandler(villaSvc, log)
	createVilla := createVillaHandler.NewHandler(villaSvc, log)
	updateVilla := updateVillaHandler.NewHandler(villaSvc, log)
	deleteVilla := deleteVillaHandler.NewHandler(villaSvc, log)
	login := loginHandler.NewHandler(userSvc, log)
	listReviews := listReviewsHandler.NewHandler(reviewSvc, log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	generateDescription := generateDescriptionHandler.NewHandler(genAI, log)

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

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Вход по email (lookup-or-create)
	api.HandleFunc("/login", login.Handle).Methods(http.MethodPost)

	// Каталог вилл
	api.HandleFunc("/villas", listVillas.Handle).Methods(http.MethodGet)
	api.HandleFunc("/villas/{villaId}", getVilla.Handle).Methods(http.MethodGet)

	// Проверка доступности дат
	api.HandleFunc("/villas/{villaId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Отзывы по вилле
	api.HandleFunc("/villas/{villaId}/reviews", listReviews.Handle).Methods(http.MethodGet)

	// Генерация описания виллы
	api.HandleFunc("/generate-description", generateDescription.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Отзывы ---
	protected.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)

	// --- Управление каталогом (для администраторов) ---
	protected.HandleFunc("/villas", createVilla.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/villas/{villaId}", updateVilla.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/villas/{villaId}", deleteVilla.Handle).Methods(http.MethodDelete)

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
