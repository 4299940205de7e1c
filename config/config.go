package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	TMDB    TMDB    `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	Tracker Tracker `json:"tracker" yaml:"tracker" mapstructure:"tracker"`
}

type TMDB struct {
	Scheme     string        `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host       string        `json:"host" yaml:"host" mapstructure:"host"`
	APIKey     string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	MaxRetries int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
	CacheTTL   time.Duration `json:"cacheTTL" yaml:"cacheTTL" mapstructure:"cacheTTL"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"gte=1,lte=65535"`
}

// Storage configuration is for the sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath" validate:"required"`
}

// Tracker houses configuration for import reconciliation and catch-up scanning
type Tracker struct {
	// ScanConcurrency caps in-flight catalog lookups during a catch-up scan
	ScanConcurrency int `json:"scanConcurrency" yaml:"scanConcurrency" mapstructure:"scanConcurrency" validate:"gte=1,lte=64"`
	// ScanInterval is how often the scheduler runs a catch-up scan; 0 disables it
	ScanInterval time.Duration `json:"scanInterval" yaml:"scanInterval" mapstructure:"scanInterval" validate:"gte=0"`
	// ImportRate throttles catalog lookups during import, in lookups per second
	ImportRate float64 `json:"importRate" yaml:"importRate" mapstructure:"importRate" validate:"gt=0"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

// Validate checks the configuration against its struct tags
func (c Config) Validate() error {
	return validator.New().Struct(c)
}
