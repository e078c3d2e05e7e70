package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	admincreatebookinghandler "github.com/TecWeb-Studio/newbodyline2/internal/api/handlers/admin_create_booking"
	cancelbookinghandler "github.com/TecWeb-Studio/newbodyline2/internal/api/handlers/cancel_booking"
	createbookinghandler "github.com/TecWeb-Studio/newbodyline2/internal/api/handlers/create_booking"
	getavailableslotshandler "github.com/TecWeb-Studio/newbodyline2/internal/api/handlers/get_available_slots"
	getbookinghandler "github.com/TecWeb-Studio/newbodyline2/internal/api/handlers/get_booking"
	gettrainershandler "github.com/TecWeb-Studio/newbodyline2/internal/api/handlers/get_trainers"
	listbookingshandler "github.com/TecWeb-Studio/newbodyline2/internal/api/handlers/list_bookings"
	managescheduleshandler "github.com/TecWeb-Studio/newbodyline2/internal/api/handlers/manage_schedules"
	managevacationshandler "github.com/TecWeb-Studio/newbodyline2/internal/api/handlers/manage_vacations"
	reschedulebookinghandler "github.com/TecWeb-Studio/newbodyline2/internal/api/handlers/reschedule_booking"
	transitionbookinghandler "github.com/TecWeb-Studio/newbodyline2/internal/api/handlers/transition_booking"
	"github.com/TecWeb-Studio/newbodyline2/internal/api/middleware"
	"github.com/TecWeb-Studio/newbodyline2/internal/config"
	bookingstorage "github.com/TecWeb-Studio/newbodyline2/internal/infra/storage/booking"
	schedulestorage "github.com/TecWeb-Studio/newbodyline2/internal/infra/storage/schedule"
	slotstorage "github.com/TecWeb-Studio/newbodyline2/internal/infra/storage/slot"
	trainerstorage "github.com/TecWeb-Studio/newbodyline2/internal/infra/storage/trainer"
	"github.com/TecWeb-Studio/newbodyline2/internal/integrations/whatsapp"
	availabilityservice "github.com/TecWeb-Studio/newbodyline2/internal/service/availability"
	bookingsservice "github.com/TecWeb-Studio/newbodyline2/internal/service/bookings"
	createbookingusecase "github.com/TecWeb-Studio/newbodyline2/internal/usecase/create_booking"
	getavailableslotsusecase "github.com/TecWeb-Studio/newbodyline2/internal/usecase/get_available_slots"
	reschedulebookingusecase "github.com/TecWeb-Studio/newbodyline2/internal/usecase/reschedule_booking"
	"github.com/TecWeb-Studio/newbodyline2/pkg/dbmetrics"
	"github.com/TecWeb-Studio/newbodyline2/pkg/logger"
	"github.com/TecWeb-Studio/newbodyline2/pkg/metrics"
	"github.com/TecWeb-Studio/newbodyline2/pkg/ratelimit"
	"github.com/TecWeb-Studio/newbodyline2/pkg/simpletxmanager"
	"github.com/TecWeb-Studio/newbodyline2/pkg/txmanager"
)

const shutdownTimeout = 10 * time.Second

// txManager объединяет интерфейсы обоих менеджеров транзакций:
// с метриками и без
type txManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// systemTimeProvider источник текущего времени для сервисов
type systemTimeProvider struct{}

func (systemTimeProvider) Now() time.Time {
	return time.Now()
}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	// Подключение к PostgreSQL
	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer sqlDB.Close()

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Connected to database %s", cfg.Database.Name)

	stopCh := make(chan struct{})
	defer close(stopCh)

	// Слой БД: с метриками подключается обертка, записывающая
	// длительность запросов и статистику пула соединений
	var (
		dbExecutor dbmetrics.DBExecutor
		txMgr      txManager
		collector  *metrics.Metrics
	)
	if cfg.Metrics.Enabled {
		collector = metrics.New(cfg.Metrics.ServiceName)
		wrapped := dbmetrics.WrapWithDefault(sqlDB, collector, cfg.Metrics.ServiceName, stopCh)
		dbExecutor = wrapped
		txMgr = txmanager.NewTransactionManager(wrapped)
	} else {
		dbExecutor = sqlDB
		txMgr = simpletxmanager.NewTransactionManager(sqlDB)
	}

	// Репозитории
	trainerRepo := trainerstorage.NewRepository(dbExecutor)
	scheduleRepo := schedulestorage.NewRepository(dbExecutor)
	slotRepo := slotstorage.NewRepository(dbExecutor)
	bookingRepo := bookingstorage.NewRepository(dbExecutor)

	// Интеграции
	notifier := whatsapp.NewClient(whatsapp.Config{
		AccountSID:  cfg.WhatsApp.AccountSID,
		AuthToken:   cfg.WhatsApp.AuthToken,
		FromNumber:  cfg.WhatsApp.FromNumber,
		AdminNumber: cfg.WhatsApp.AdminNumber,
		SiteBaseURL: cfg.Site.BaseURL,
	}, log)

	timeProvider := systemTimeProvider{}

	// Сервисы и юзкейсы
	availabilitySvc := availabilityservice.NewService(scheduleRepo, slotRepo, trainerRepo, timeProvider, log)
	bookingsSvc := bookingsservice.NewService(bookingRepo, slotRepo, trainerRepo, txMgr, notifier, log)
	createBookingUC := createbookingusecase.NewUseCase(trainerRepo, slotRepo, bookingRepo, txMgr, notifier, timeProvider, log)
	getSlotsUC := getavailableslotsusecase.NewUseCase(scheduleRepo, slotRepo, trainerRepo, timeProvider, log)
	rescheduleUC := reschedulebookingusecase.NewUseCase(bookingRepo, slotRepo, trainerRepo, txMgr, notifier, timeProvider, log)

	// Обработчики
	getTrainersH := gettrainershandler.New(trainerRepo, log)
	getSlotsH := getavailableslotshandler.New(getSlotsUC, log)
	createBookingH := createbookinghandler.New(createBookingUC, log)
	getBookingH := getbookinghandler.New(bookingsSvc, log)
	rescheduleH := reschedulebookinghandler.New(rescheduleUC, log)
	cancelH := cancelbookinghandler.New(bookingsSvc, log)
	listBookingsH := listbookingshandler.New(bookingsSvc, log)
	adminCreateH := admincreatebookinghandler.New(createBookingUC, log)
	transitionH := transitionbookinghandler.New(bookingsSvc, log)
	schedulesH := managescheduleshandler.New(availabilitySvc, log)
	vacationsH := managevacationshandler.New(availabilitySvc, log)

	limiter := ratelimit.New(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window())
	go limiter.Janitor(time.Minute, stopCh)

	// Маршрутизация
	router := mux.NewRouter()
	router.Use(middleware.CORS)
	if cfg.Metrics.Enabled {
		router.Use(middleware.Metrics(collector))
		router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	}

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/trainers", getTrainersH.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{trainerId}", getSlotsH.Handle).Methods(http.MethodGet)
	api.Handle("/bookings",
		middleware.RateLimit(limiter)(http.HandlerFunc(createBookingH.Handle)),
	).Methods(http.MethodPost)
	api.HandleFunc("/bookings", cancelH.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{bookingId}", getBookingH.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", rescheduleH.Handle).Methods(http.MethodPatch)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Server.AdminToken))
	admin.HandleFunc("/bookings", listBookingsH.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", adminCreateH.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}", transitionH.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/schedules", schedulesH.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/schedules", schedulesH.HandleAdd).Methods(http.MethodPost)
	admin.HandleFunc("/schedules", schedulesH.HandleRemove).Methods(http.MethodDelete)
	admin.HandleFunc("/vacations", vacationsH.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/vacations", vacationsH.HandleAdd).Methods(http.MethodPost)
	admin.HandleFunc("/vacations", vacationsH.HandleRemove).Methods(http.MethodDelete)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
		IdleTimeout:  cfg.Server.IdleTimeout(),
	}

	go func() {
		log.Info("Server listening on %s", cfg.Server.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed: %v", err)
	}
	log.Info("Server stopped")
}
