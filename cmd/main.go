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

	cancelBookingHandler "github.com/m04kA/WGS-BookingService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/m04kA/WGS-BookingService/internal/api/handlers/confirm_booking"
	getAvailableStartsHandler "github.com/m04kA/WGS-BookingService/internal/api/handlers/get_available_starts"
	getRoomsHandler "github.com/m04kA/WGS-BookingService/internal/api/handlers/get_rooms"
	getSettingsHandler "github.com/m04kA/WGS-BookingService/internal/api/handlers/get_settings"
	listBookingsHandler "github.com/m04kA/WGS-BookingService/internal/api/handlers/list_bookings"
	listCancelledHandler "github.com/m04kA/WGS-BookingService/internal/api/handlers/list_cancelled"
	submitBookingHandler "github.com/m04kA/WGS-BookingService/internal/api/handlers/submit_booking"
	updateSettingsHandler "github.com/m04kA/WGS-BookingService/internal/api/handlers/update_settings"
	wsHandler "github.com/m04kA/WGS-BookingService/internal/api/handlers/ws"
	"github.com/m04kA/WGS-BookingService/internal/api/middleware"
	"github.com/m04kA/WGS-BookingService/internal/config"
	"github.com/m04kA/WGS-BookingService/internal/infra/notify"
	archiveRepo "github.com/m04kA/WGS-BookingService/internal/infra/storage/archive"
	bookingRepo "github.com/m04kA/WGS-BookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/WGS-BookingService/internal/infra/storage/room"
	settingsRepo "github.com/m04kA/WGS-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/WGS-BookingService/internal/integrations/whatsapp"
	bookingsService "github.com/m04kA/WGS-BookingService/internal/service/bookings"
	roomsService "github.com/m04kA/WGS-BookingService/internal/service/rooms"
	settingsService "github.com/m04kA/WGS-BookingService/internal/service/settings"
	getAvailableStartsUC "github.com/m04kA/WGS-BookingService/internal/usecase/get_available_starts"
	submitBookingUC "github.com/m04kA/WGS-BookingService/internal/usecase/submit_booking"
	"github.com/m04kA/WGS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/WGS-BookingService/pkg/logger"
	"github.com/m04kA/WGS-BookingService/pkg/metrics"
	"github.com/m04kA/WGS-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/WGS-BookingService/pkg/txmanager"
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

	log.Info("Starting WGS-BookingService...")
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

	// Билдер ссылок для уведомления администратора в WhatsApp
	linkBuilder := whatsapp.NewLinkBuilder(cfg.WhatsApp.AdminNumber)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		roomRepository     *roomRepo.Repository
		settingsRepository *settingsRepo.Repository
		archiveRepository  *archiveRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		archiveRepository = archiveRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		archiveRepository = archiveRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, archiveRepository, log)
	roomSvc := roomsService.NewService(roomRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		settingsRepository,
		linkBuilder,
		txMgr,
		log,
	)

	getAvailableStartsUseCase := getAvailableStartsUC.NewUseCase(
		bookingRepository,
		roomRepository,
		settingsRepository,
		log,
	)

	// Слушатель изменений хранилища (LISTEN/NOTIFY)
	changeListener, err := notify.New(cfg.Database.DSN(), log.Warn)
	if err != nil {
		log.Fatal("Failed to start change listener: %v", err)
	}
	defer changeListener.Close()
	log.Info("Store change listener started")

	// Инициализируем handlers
	getRooms := getRoomsHandler.NewHandler(roomSvc, log)
	getAvailableStarts := getAvailableStartsHandler.NewHandler(getAvailableStartsUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listCancelled := listCancelledHandler.NewHandler(bookingSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Websocket хаб для realtime обновлений фронтенда
	var wsMetrics wsHandler.Metrics
	if cfg.Metrics.Enabled {
		wsMetrics = metricsCollector
	}
	wsHub := wsHandler.NewHandler(wsMetrics, log)
	go wsHub.Run(changeListener.Events())
	defer wsHub.Close()

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Список комнат студии
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)

	// Доступные времена начала аренды
	api.HandleFunc("/rooms/{roomId}/available-starts", getAvailableStarts.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", submitBooking.Handle).Methods(http.MethodPost)

	// Realtime обновления
	api.HandleFunc("/ws", wsHub.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	// Список бронирований с поиском
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Подтверждение бронирования
	admin.HandleFunc("/bookings/{id}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования (с архивированием)
	admin.HandleFunc("/bookings/{id}", cancelBooking.Handle).Methods(http.MethodDelete)

	// Архив отменённых бронирований
	admin.HandleFunc("/cancelled-bookings", listCancelled.Handle).Methods(http.MethodGet)

	// Настройки студии
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

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
