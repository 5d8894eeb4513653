package bot

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/m3rciful/tailtrust/clinic/schedule"
	coreconfig "github.com/m3rciful/tailtrust/core/config"
	coredatabase "github.com/m3rciful/tailtrust/core/database"
)

// BookingConfig holds the clinic schedule settings. Weekday numbers
// follow time.Weekday (0 = Sunday).
type BookingConfig struct {
	HorizonDays int      `yaml:"horizon_days" envconfig:"BOOKING_HORIZON_DAYS"`
	Weekdays    []int    `yaml:"weekdays"`
	DateLayout  string   `yaml:"date_layout"`
	Times       []string `yaml:"times"`
	PetTypes    []string `yaml:"pet_types"`
}

// ScheduleConfig converts the YAML shape into the schedule package's config.
func (b BookingConfig) ScheduleConfig() schedule.Config {
	days := make([]time.Weekday, 0, len(b.Weekdays))
	for _, d := range b.Weekdays {
		days = append(days, time.Weekday(d))
	}
	return schedule.Config{
		HorizonDays: b.HorizonDays,
		Weekdays:    days,
		DateLayout:  b.DateLayout,
		Times:       b.Times,
		PetTypes:    b.PetTypes,
	}
}

// Config is the full application configuration: the reusable core
// sections plus database and booking.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Database coredatabase.Config `yaml:"database"`
	Booking  BookingConfig       `yaml:"booking"`
}

// CoreConfig exposes the embedded core configuration to the runner.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Config
}

// Load reads the application configuration from a YAML file, applies
// environment overrides, and validates the core sections.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return nil, err
	}
	if cfg.Booking.HorizonDays < 0 {
		return nil, fmt.Errorf("booking.horizon_days must be >= 0")
	}
	for _, d := range cfg.Booking.Weekdays {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("booking.weekdays values must be within 0..6, got %d", d)
		}
	}
	return &cfg, nil
}
