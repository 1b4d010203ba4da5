package main

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	reservationsCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/reservations"
	hoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/hours"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	validateSlotUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/validate_slot"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

// reservationReaders источники бронирований для use cases
type reservationReaders struct {
	// fresh всегда читает хранилище
	fresh reservationStore
	// cached может отдавать снимок из Redis в пределах TTL
	cached reservationStore
}

// newReservationReaders оборачивает хранилище кэшем, если передан клиент Redis
func newReservationReaders(
	store reservationStore,
	redisClient redis.Cmdable,
	ttl time.Duration,
	metricsCollector *metrics.Metrics,
	log *logger.Logger,
) reservationReaders {
	readers := reservationReaders{fresh: store, cached: store}
	if redisClient != nil {
		readers.cached = reservationsCache.NewCache(redisClient, store, ttl, metricsCollector, log)
	}
	return readers
}

type useCases struct {
	getAvailableSlots *getAvailableSlotsUC.UseCase
	validateSlot      *validateSlotUC.UseCase
}

// newUseCases собирает use cases. Перечисление слотов может читать снимок из кэша,
// проверка слота перед бронированием читает хранилище напрямую.
func newUseCases(
	readers reservationReaders,
	hoursSvc *hoursService.Service,
	engine *availability.Engine,
	location *time.Location,
	metricsCollector *metrics.Metrics,
	log *logger.Logger,
) useCases {
	return useCases{
		getAvailableSlots: getAvailableSlotsUC.NewUseCase(
			readers.cached,
			hoursSvc,
			engine,
			location,
			metricsCollector,
			log,
		),
		validateSlot: validateSlotUC.NewUseCase(
			readers.fresh,
			hoursSvc,
			engine,
			location,
			metricsCollector,
			log,
		),
	}
}
