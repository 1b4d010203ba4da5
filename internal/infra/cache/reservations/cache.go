package reservations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const keyPrefix = "reservations"

// Cache read-through кэш снимков бронирований в Redis.
// Ошибки Redis не прерывают запрос: чтение уходит в следующий источник.
type Cache struct {
	client  redis.Cmdable
	next    ReservationReader
	ttl     time.Duration
	metrics Metrics
	logger  Logger
}

// NewCache создает кэш поверх next. metrics может быть nil.
func NewCache(client redis.Cmdable, next ReservationReader, ttl time.Duration, metrics Metrics, logger Logger) *Cache {
	return &Cache{
		client:  client,
		next:    next,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// Key ключ снимка: reservations:{specialist}:{YYYY-MM-DD}
func Key(specialistID int64, date time.Time) string {
	return fmt.Sprintf("%s:%d:%s", keyPrefix, specialistID, date.Format(domain.DateFormat))
}

// ListByDate возвращает снимок из Redis или читает его из next и сохраняет
func (c *Cache) ListByDate(ctx context.Context, specialistID int64, date time.Time) ([]domain.Reservation, error) {
	key := Key(specialistID, date)

	cached, err := c.get(ctx, key)
	switch {
	case err == nil:
		c.hit()
		return cached, nil
	case errors.Is(err, redis.Nil):
		c.miss()
	default:
		c.fail()
		c.logger.Warn("ReservationsCache: get key=%s failed, reading from store: %v", key, err)
	}

	reservations, err := c.next.ListByDate(ctx, specialistID, date)
	if err != nil {
		return nil, err
	}

	if err := c.set(ctx, key, reservations); err != nil {
		c.fail()
		c.logger.Warn("ReservationsCache: set key=%s failed: %v", key, err)
	}

	return reservations, nil
}

func (c *Cache) get(ctx context.Context, key string) ([]domain.Reservation, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var cached []cachedReservation
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	reservations, err := toDomain(cached)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	return reservations, nil
}

func (c *Cache) set(ctx context.Context, key string, reservations []domain.Reservation) error {
	data, err := json.Marshal(fromDomain(reservations))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *Cache) hit() {
	if c.metrics != nil {
		c.metrics.CacheHit()
	}
}

func (c *Cache) miss() {
	if c.metrics != nil {
		c.metrics.CacheMiss()
	}
}

func (c *Cache) fail() {
	if c.metrics != nil {
		c.metrics.CacheError()
	}
}
