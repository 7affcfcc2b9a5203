package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/transhub/shuttletrack/internal/pkg/models"
)

// InitConfig loads configuration from an optional config file plus
// environment variables. Environment variables win: SERVER_PORT overrides
// the file's server.port, and so on.
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			// A missing file is fine in containerized deployments where
			// everything arrives through the environment.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg models.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "shuttletrack")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "development")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "shuttletrack")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "shuttletrack")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.address", "localhost:4150")
	v.SetDefault("nsq.enabled", false)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "shuttletrack")

	v.SetDefault("api.base_url", "http://localhost:9990")
	v.SetDefault("api.timeout", 10)
	v.SetDefault("api.maps_api_key", "")
	v.SetDefault("api.session_path", "")

	v.SetDefault("tracking.publish_interval", 10*time.Second)
	v.SetDefault("tracking.assignment_interval", 10*time.Second)
	v.SetDefault("tracking.location_interval", 30*time.Second)
	v.SetDefault("tracking.staleness_timeout", 90*time.Second)
	v.SetDefault("tracking.acquisition_timeout", 10*time.Second)
	v.SetDefault("tracking.one_shot_max_fix_age", 60*time.Second)
	v.SetDefault("tracking.tracking_max_fix_age", 30*time.Second)
	v.SetDefault("tracking.geocode_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("tracking.geocode_enabled", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.file_path", "")
}
