package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getBusinessHoursHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_business_hours"
	getDayScheduleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_day_schedule"
	validateSlotHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/validate_slot"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	hoursRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/hours"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/memory"
	reservationRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/reservation"
	hoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/hours"
	scheduleService "github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
	getBusinessHoursUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_business_hours"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

// reservationStore источник бронирований: хранилище или кэш поверх него
type reservationStore interface {
	ListByDate(ctx context.Context, specialistID int64, date time.Time) ([]domain.Reservation, error)
}

// hoursStore источник часов работы специалистов
type hoursStore interface {
	GetBusinessHours(ctx context.Context, specialistID int64, weekday time.Weekday) (*domain.SpecialistHours, error)
}

func main() {
	// Загружаем конфигурацию
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены). nil коллектор безопасен для всех методов.
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(prometheus.DefaultRegisterer, cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилища
	var (
		reservations reservationStore
		hoursSource  hoursStore
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		if cfg.Storage.SeedFile != "" {
			if err := store.LoadSeedFile(cfg.Storage.SeedFile); err != nil {
				log.Fatal("Failed to load seed file: %v", err)
			}
			log.Info("In-memory storage seeded from %s", cfg.Storage.SeedFile)
		}
		reservations = store
		hoursSource = store
		log.Warn("Using in-memory storage, data is not persisted")

	default:
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

		reservations = reservationRepo.NewRepository(db)
		hoursSource = hoursRepo.NewRepository(db)
	}

	// Кэш снимков бронирований (если включен)
	var redisClient redis.Cmdable
	if cfg.Cache.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			// Кэш необязателен: сервис продолжает работать напрямую с хранилищем
			log.Warn("Redis is unavailable at %s, cache disabled: %v", cfg.Cache.Addr, err)
		} else {
			redisClient = client
			log.Info("Reservation cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTLSeconds)
		}
		cancel()
	}
	readers := newReservationReaders(
		reservations,
		redisClient,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		metricsCollector,
		log,
	)

	// Инициализируем сервисы
	hoursSvc := hoursService.NewService(
		hoursSource,
		domain.AvailabilityConfig{
			Hours:              cfg.Availability.DefaultHours(),
			GranularityMinutes: cfg.Availability.GranularityMinutes,
		},
		log,
	)
	engine := availability.NewEngine(availability.RealClock{})
	location := cfg.Availability.LoadLocation()
	scheduleSvc := scheduleService.NewService(readers.cached, hoursSvc, location, log)
	log.Info("Availability defaults: hours=%s-%s, granularity=%dm, location=%s",
		cfg.Availability.OpenTime, cfg.Availability.CloseTime, cfg.Availability.GranularityMinutes, location)

	// Инициализируем use cases
	ucs := newUseCases(readers, hoursSvc, engine, location, metricsCollector, log)
	getBusinessHoursUseCase := getBusinessHoursUC.NewUseCase(hoursSvc, location, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(ucs.getAvailableSlots, log)
	validateSlot := validateSlotHandler.NewHandler(ucs.validateSlot, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(getBusinessHoursUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}
	r.Use(middleware.Recovery(log))

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Свободные времена начала для сессии заданной длительности
	api.HandleFunc("/specialists/{specialistId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка конкретного слота перед бронированием
	api.HandleFunc("/specialists/{specialistId}/slots/validate",
		validateSlot.Handle).Methods(http.MethodPost)

	// Действующие часы работы на дату
	api.HandleFunc("/specialists/{specialistId}/business-hours",
		getBusinessHours.Handle).Methods(http.MethodGet)

	// Занятые интервалы и свободные окна на дату (для календаря)
	api.HandleFunc("/specialists/{specialistId}/schedule",
		getDaySchedule.Handle).Methods(http.MethodGet)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	log.Info("Server stopped gracefully")
}
