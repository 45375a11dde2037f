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

	bulkCreateTentsHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/bulk_create_tents"
	bulkDeleteTentsHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/bulk_delete_tents"
	cancelBookingHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/cancel_booking"
	checkCapacityHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/check_capacity"
	checkInHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/check_in"
	checkOutHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/check_out"
	createBookingHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/create_booking"
	createBroadcastHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/create_broadcast"
	createSectorHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/create_sector"
	createTentHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/create_tent"
	deleteSectorHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/delete_sector"
	deleteTentHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/delete_tent"
	extendStayHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/extend_stay"
	getBookingHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/get_booking"
	getTentBookingsHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/get_tent_bookings"
	listNotificationsHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/list_notifications"
	listTentsHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/list_tents"
	markReadHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/mark_read"
	renameSectorHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/rename_sector"
	scanOverdueHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/scan_overdue"
	updateMemberHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/update_member"
	updateTentHandler "github.com/m04kA/SMC-CampService/internal/api/handlers/update_tent"
	"github.com/m04kA/SMC-CampService/internal/api/middleware"
	"github.com/m04kA/SMC-CampService/internal/config"
	bookingRepo "github.com/m04kA/SMC-CampService/internal/infra/storage/booking"
	campRepo "github.com/m04kA/SMC-CampService/internal/infra/storage/camp"
	notificationRepo "github.com/m04kA/SMC-CampService/internal/infra/storage/notification"
	bookingsService "github.com/m04kA/SMC-CampService/internal/service/bookings"
	campsService "github.com/m04kA/SMC-CampService/internal/service/camps"
	notificationsService "github.com/m04kA/SMC-CampService/internal/service/notifications"
	bulkCreateTentsUC "github.com/m04kA/SMC-CampService/internal/usecase/bulk_create_tents"
	checkCapacityUC "github.com/m04kA/SMC-CampService/internal/usecase/check_capacity"
	createBookingUC "github.com/m04kA/SMC-CampService/internal/usecase/create_booking"
	scanOverdueUC "github.com/m04kA/SMC-CampService/internal/usecase/scan_overdue"
	"github.com/m04kA/SMC-CampService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CampService/pkg/logger"
	"github.com/m04kA/SMC-CampService/pkg/metrics"
	"github.com/m04kA/SMC-CampService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CampService/pkg/txmanager"
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

	log.Info("Starting SMC-CampService...")
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
		bookingRepository      *bookingRepo.Repository
		campRepository         *campRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		campRepository = campRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		campRepository = campRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)
	campSvc := campsService.NewService(campRepository, bookingRepository, txMgr, log)
	notificationSvc := notificationsService.NewService(notificationRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		campRepository,
		bookingRepository,
		notificationRepository,
		txMgr,
		log,
	)
	checkCapacityUseCase := checkCapacityUC.NewUseCase(campRepository, bookingRepository, txMgr, log)
	bulkCreateTentsUseCase := bulkCreateTentsUC.NewUseCase(campRepository, txMgr, log)
	scanOverdueUseCase := scanOverdueUC.NewUseCase(bookingRepository, notificationRepository, txMgr, log)

	// Часовой пояс лагеря для границы календарного дня сканера
	if cfg.Scanner.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Scanner.Timezone)
		if err != nil {
			log.Fatal("Invalid scanner timezone %q: %v", cfg.Scanner.Timezone, err)
		}
		scanOverdueUseCase = scanOverdueUseCase.WithTimeProvider(&scanOverdueUC.ZoneTimeProvider{Loc: loc})
		log.Info("Overdue scanner uses timezone %s", cfg.Scanner.Timezone)
	}

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkCapacity := checkCapacityHandler.NewHandler(checkCapacityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getTentBookings := getTentBookingsHandler.NewHandler(bookingSvc, log)
	checkIn := checkInHandler.NewHandler(bookingSvc, log)
	checkOut := checkOutHandler.NewHandler(bookingSvc, log)
	extendStay := extendStayHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateMember := updateMemberHandler.NewHandler(bookingSvc, log)
	scanOverdue := scanOverdueHandler.NewHandler(scanOverdueUseCase, log)

	createSector := createSectorHandler.NewHandler(campSvc, log)
	renameSector := renameSectorHandler.NewHandler(campSvc, log)
	deleteSector := deleteSectorHandler.NewHandler(campSvc, log)
	createTent := createTentHandler.NewHandler(campSvc, log)
	updateTent := updateTentHandler.NewHandler(campSvc, log)
	listTents := listTentsHandler.NewHandler(campSvc, log)
	deleteTent := deleteTentHandler.NewHandler(campSvc, log)
	bulkCreateTents := bulkCreateTentsHandler.NewHandler(bulkCreateTentsUseCase, log)
	bulkDeleteTents := bulkDeleteTentsHandler.NewHandler(campSvc, log)

	createBroadcast := createBroadcastHandler.NewHandler(notificationSvc, log)
	listNotifications := listNotificationsHandler.NewHandler(notificationSvc, log)
	markRead := markReadHandler.NewHandler(notificationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все маршруты требуют identity заголовки шлюза
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/scan-overdue", scanOverdue.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/check-in", checkIn.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/check-out", checkOut.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/extend", extendStay.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/members/{memberId}", updateMember.Handle).Methods(http.MethodPatch)

	// --- Палатки и сектора ---
	api.HandleFunc("/sectors", createSector.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sectors/{sectorId}", renameSector.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sectors/{sectorId}", deleteSector.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/sectors/{sectorId}/tents", createTent.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sectors/{sectorId}/tents", listTents.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sectors/{sectorId}/tents", bulkDeleteTents.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/sectors/{sectorId}/tents/bulk", bulkCreateTents.Handle).Methods(http.MethodPost)
	api.HandleFunc("/tents/{tentId}", updateTent.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/tents/{tentId}", deleteTent.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/tents/{tentId}/capacity", checkCapacity.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tents/{tentId}/bookings", getTentBookings.Handle).Methods(http.MethodGet)

	// --- Уведомления ---
	api.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)
	api.HandleFunc("/notifications/broadcast", createBroadcast.Handle).Methods(http.MethodPost)
	api.HandleFunc("/notifications/mark-read", markRead.Handle).Methods(http.MethodPost)

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
