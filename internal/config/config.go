package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Config конфигурация сервиса, загружаемая из config.toml
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Auth    AuthConfig    `toml:"auth"`
	Storage StorageConfig `toml:"storage"`
	Parking ParkingConfig `toml:"parking"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки выпуска access-токенов
type AuthConfig struct {
	JWTSecret       string `toml:"jwt_secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

// StorageConfig настройки персистентности журнала бронирований
type StorageConfig struct {
	BookingsFile string `toml:"bookings_file"`
}

// ParkingConfig инвентарь парковки и тарифы
type ParkingConfig struct {
	// Slots упорядоченный список типов слотов; id назначаются
	// последовательно начиная с 1
	Slots []string `toml:"slots"`

	BookingTimeoutMillis int64 `toml:"booking_timeout_ms"`

	Rates RatesConfig `toml:"rates"`
}

// RatesConfig тарифы за минуту стоянки по типу слота
type RatesConfig struct {
	Compact     float64 `toml:"compact"`
	Regular     float64 `toml:"regular"`
	Large       float64 `toml:"large"`
	Handicapped float64 `toml:"handicapped"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "smc-parking-service",
		},
		Auth: AuthConfig{
			TokenTTLMinutes: 60,
		},
		Storage: StorageConfig{
			BookingsFile: domain.DefaultBookingsFile,
		},
		Parking: ParkingConfig{
			Slots: []string{
				string(domain.SlotCompact),
				string(domain.SlotRegular),
				string(domain.SlotLarge),
				string(domain.SlotHandicapped),
			},
			BookingTimeoutMillis: domain.DefaultBookingTimeoutMillis,
			Rates: RatesConfig{
				Compact:     domain.RateCompactPerMinute,
				Regular:     domain.RateRegularPerMinute,
				Large:       domain.RateLargePerMinute,
				Handicapped: domain.RateHandicappedPerMinute,
			},
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: auth.jwt_secret is required")
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		return fmt.Errorf("config: auth.token_ttl_minutes must be positive")
	}
	if c.Storage.BookingsFile == "" {
		return fmt.Errorf("config: storage.bookings_file is required")
	}
	if c.Parking.BookingTimeoutMillis <= 0 {
		return fmt.Errorf("config: parking.booking_timeout_ms must be positive")
	}
	if len(c.Parking.Slots) == 0 {
		return fmt.Errorf("config: parking.slots must list at least one slot")
	}
	for i, s := range c.Parking.Slots {
		if !domain.IsValidSlotType(domain.SlotType(s)) {
			return fmt.Errorf("config: parking.slots[%d]: unknown slot type %q", i, s)
		}
	}
	return nil
}

// SlotTypes возвращает инвентарь слотов в порядке объявления
func (c *Config) SlotTypes() []domain.SlotType {
	types := make([]domain.SlotType, len(c.Parking.Slots))
	for i, s := range c.Parking.Slots {
		types[i] = domain.SlotType(s)
	}
	return types
}

// Tariff собирает тарифную конфигурацию движка
func (c *Config) Tariff() domain.Tariff {
	return domain.Tariff{
		PerMinuteRates: map[domain.SlotType]float64{
			domain.SlotCompact:     c.Parking.Rates.Compact,
			domain.SlotRegular:     c.Parking.Rates.Regular,
			domain.SlotLarge:       c.Parking.Rates.Large,
			domain.SlotHandicapped: c.Parking.Rates.Handicapped,
		},
		BookingTimeoutMillis: c.Parking.BookingTimeoutMillis,
	}
}
