package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// ErrInvalidConfig возвращается, когда значения конфигурации некорректны
var ErrInvalidConfig = errors.New("config: invalid config")

// Config конфигурация сервиса, читается из config.toml
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Cache        CacheConfig        `toml:"cache"`
	Storage      StorageConfig      `toml:"storage"`
	Availability AvailabilityConfig `toml:"availability"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CacheConfig настройки Redis кэша снимков бронирований
type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// StorageConfig выбирает источник бронирований: postgres или memory
type StorageConfig struct {
	Driver   string `toml:"driver"`
	SeedFile string `toml:"seed_file"` // только для memory: TOML с часами работы и бронированиями
}

// AvailabilityConfig значения по умолчанию, когда у специалиста нет своих часов работы
type AvailabilityConfig struct {
	OpenTime           string `toml:"open_time"`
	CloseTime          string `toml:"close_time"`
	GranularityMinutes int    `toml:"granularity_minutes"`
	Location           string `toml:"location"` // IANA имя, в котором трактуются даты запросов
}

// LoadLocation часовой пояс календарных дат. Вызывать после успешного Validate.
func (a AvailabilityConfig) LoadLocation() *time.Location {
	loc, err := time.LoadLocation(a.Location)
	if err != nil {
		return time.Local
	}
	return loc
}

// DefaultHours рабочие часы по умолчанию. Вызывать после успешного Validate.
func (a AvailabilityConfig) DefaultHours() domain.BusinessHours {
	openAt, err := types.ParseTimeOfDay(a.OpenTime)
	if err != nil {
		return domain.DefaultBusinessHours()
	}
	closeAt, err := types.ParseIntervalEnd(a.CloseTime)
	if err != nil {
		return domain.DefaultBusinessHours()
	}
	hours, err := domain.NewBusinessHours(openAt, closeAt)
	if err != nil {
		return domain.DefaultBusinessHours()
	}
	return hours
}

// Load читает конфигурацию из файла, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc-availability-service"
	}

	if c.Cache.TTLSeconds == 0 {
		c.Cache.TTLSeconds = 30
	}

	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverPostgres
	}

	if c.Availability.OpenTime == "" {
		c.Availability.OpenTime = types.TimeOfDay(domain.DefaultOpenMinutes).String()
	}
	if c.Availability.CloseTime == "" {
		c.Availability.CloseTime = types.TimeOfDay(domain.DefaultCloseMinutes).String()
	}
	if c.Availability.GranularityMinutes == 0 {
		c.Availability.GranularityMinutes = domain.DefaultGranularityMinutes
	}
	if c.Availability.Location == "" {
		c.Availability.Location = "Local"
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres storage", ErrInvalidConfig)
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Cache.Enabled {
		if c.Cache.Addr == "" {
			return fmt.Errorf("%w: cache.addr is required when cache is enabled", ErrInvalidConfig)
		}
		if c.Cache.TTLSeconds < 0 {
			return fmt.Errorf("%w: cache.ttl_seconds must not be negative", ErrInvalidConfig)
		}
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}

	openAt, err := types.ParseTimeOfDay(c.Availability.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: availability.open_time: %v", ErrInvalidConfig, err)
	}
	closeAt, err := types.ParseIntervalEnd(c.Availability.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: availability.close_time: %v", ErrInvalidConfig, err)
	}
	if _, err := domain.NewBusinessHours(openAt, closeAt); err != nil {
		return fmt.Errorf("%w: availability hours: %v", ErrInvalidConfig, err)
	}

	g := c.Availability.GranularityMinutes
	if g < domain.MinGranularityMinutes || g > domain.MaxGranularityMinutes {
		return fmt.Errorf("%w: availability.granularity_minutes must be between %d and %d, got %d",
			ErrInvalidConfig, domain.MinGranularityMinutes, domain.MaxGranularityMinutes, g)
	}

	if _, err := time.LoadLocation(c.Availability.Location); err != nil {
		return fmt.Errorf("%w: availability.location: %v", ErrInvalidConfig, err)
	}

	return nil
}
