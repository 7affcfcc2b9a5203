package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	NSQ      NSQConfig      `mapstructure:"nsq"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	API      APIConfig      `mapstructure:"api"`
	Tracking TrackingConfig `mapstructure:"tracking"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains Postgres connection configuration
type DatabaseConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string `mapstructure:"address"`
	Enabled bool   `mapstructure:"enabled"`
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration int    `mapstructure:"expiration"` // minutes
	Issuer     string `mapstructure:"issuer"`
}

// APIConfig is the client-side view of the tracking backend
type APIConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	Timeout     int    `mapstructure:"timeout"` // seconds
	MapsAPIKey  string `mapstructure:"maps_api_key"`
	SessionPath string `mapstructure:"session_path"`
}

// TrackingConfig holds the polling and staleness knobs for the location core
type TrackingConfig struct {
	PublishInterval    time.Duration `mapstructure:"publish_interval"`
	AssignmentInterval time.Duration `mapstructure:"assignment_interval"`
	LocationInterval   time.Duration `mapstructure:"location_interval"`
	StalenessTimeout   time.Duration `mapstructure:"staleness_timeout"`
	AcquisitionTimeout time.Duration `mapstructure:"acquisition_timeout"`
	OneShotMaxFixAge   time.Duration `mapstructure:"one_shot_max_fix_age"`
	TrackingMaxFixAge  time.Duration `mapstructure:"tracking_max_fix_age"`
	GeocodeURL         string        `mapstructure:"geocode_url"`
	GeocodeEnabled     bool          `mapstructure:"geocode_enabled"`
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	FilePath string `mapstructure:"file_path"`
}
