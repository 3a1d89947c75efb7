package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getAvailableSlotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_user_bookings"
	loadBookingsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/load_bookings"
	loginUserHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/login_user"
	markEntryHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/mark_entry"
	markExitHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/mark_exit"
	payBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/pay_booking"
	registerStaffHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/register_staff"
	registerUserHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/register_user"
	reserveSlotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/reserve_slot"
	saveBookingsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/save_bookings"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingsStore "github.com/m04kA/SMC-ParkingService/internal/infra/storage/bookingfile"
	bookingsLedger "github.com/m04kA/SMC-ParkingService/internal/infra/storage/bookings"
	slotsRegistry "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slots"
	parkingService "github.com/m04kA/SMC-ParkingService/internal/service/parking"
	usersService "github.com/m04kA/SMC-ParkingService/internal/service/users"
	getAvailableSlotsUC "github.com/m04kA/SMC-ParkingService/internal/usecase/get_available_slots"
	reserveSlotUC "github.com/m04kA/SMC-ParkingService/internal/usecase/reserve_slot"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
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

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилища парковки
	registry := slotsRegistry.NewRegistry()
	registry.AddAll(cfg.SlotTypes()...)
	log.Info("Slot registry initialized: %d slots", registry.Count())

	ledger := bookingsLedger.NewLedger()
	fileStore := bookingsStore.NewRepository(cfg.Storage.BookingsFile)

	// Движок парковки: реестр слотов + журнал бронирований + файловый снапшот
	engine := parkingService.NewService(
		registry,
		ledger,
		fileStore,
		cfg.Tariff(),
		log,
		metricsCollector,
	)

	// Восстанавливаем журнал с диска (отсутствующий файл создается пустым)
	loaded, err := engine.LoadBookings(context.Background())
	if err != nil {
		log.Fatal("Failed to load bookings from %s: %v", fileStore.Path(), err)
	}
	log.Info("Bookings restored from %s: count=%d", fileStore.Path(), loaded)

	// Сервис пользователей
	users := usersService.NewService(log)
	if err := users.EnsureDefaultAdmin(context.Background()); err != nil {
		log.Fatal("Failed to create default admin: %v", err)
	}

	// Инициализируем use cases
	reserveSlotUseCase := reserveSlotUC.NewUseCase(engine, users, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(engine, log)

	// Инициализируем handlers
	tokenTTL := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute
	registerUser := registerUserHandler.NewHandler(users, log)
	registerStaff := registerStaffHandler.NewHandler(users, log)
	loginUser := loginUserHandler.NewHandler(users, log, cfg.Auth.JWTSecret, tokenTTL)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	reserveSlot := reserveSlotHandler.NewHandler(reserveSlotUseCase, log)
	getBooking := getBookingHandler.NewHandler(engine, log)
	getUserBookings := getUserBookingsHandler.NewHandler(engine, users, log)
	markEntry := markEntryHandler.NewHandler(engine, log)
	markExit := markExitHandler.NewHandler(engine, log)
	payBooking := payBookingHandler.NewHandler(engine, log)
	saveBookings := saveBookingsHandler.NewHandler(engine, log)
	loadBookings := loadBookingsHandler.NewHandler(engine, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/register", registerUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", loginUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	// Создание бронирования — только для клиентов
	clients := protected.PathPrefix("").Subrouter()
	clients.Use(middleware.RequireRoles(domain.RoleUser))
	clients.HandleFunc("/bookings", reserveSlot.Handle).Methods(http.MethodPost)

	// Просмотр и оплата — владелец или персонал (проверка в handler)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{username}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/payment", payBooking.Handle).Methods(http.MethodPost)

	// Въезд и выезд фиксирует персонал
	staff := protected.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireRoles(domain.RoleAttendant, domain.RoleAdmin))
	staff.HandleFunc("/bookings/{bookingId}/entry", markEntry.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/bookings/{bookingId}/exit", markExit.Handle).Methods(http.MethodPatch)

	// Администрирование
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireRoles(domain.RoleAdmin))
	admin.HandleFunc("/users", registerStaff.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/save", saveBookings.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/load", loadBookings.Handle).Methods(http.MethodPost)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Сохраняем журнал на диск перед выходом
	if err := engine.SaveBookings(context.Background()); err != nil {
		log.Error("Failed to save bookings on shutdown: %v", err)
	} else {
		log.Info("Bookings saved to %s", fileStore.Path())
	}

	log.Info("Server stopped gracefully")
}
