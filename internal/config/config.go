package config

import (
	"time"

	"go.uber.org/zap"

	"github.com/ecologicaleaving/wikigaialab/pkg/config"
	"github.com/ecologicaleaving/wikigaialab/pkg/logger"
)

// ServiceName is the config file and env prefix of this service
const ServiceName = "community"

// Config community service configuration
type Config struct {
	Service      ServiceConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Log          LogConfig
	Email        EmailConfig
	Reputation   ReputationConfig
	Achievements AchievementsConfig
	Reconciler   ReconcilerConfig
	Notification NotificationConfig
}

type ServiceConfig struct {
	Name        string
	Environment string
	Version     string
}

type JWTConfig struct {
	Secret          string
	TokenQueryParam string
}

type LogConfig struct {
	Level       string
	Format      string
	Output      string
	FilePath    string
	Development bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type EmailConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

type AchievementsConfig struct {
	CatalogPath string
	SeedOnStart bool
}

type ReconcilerConfig struct {
	Enabled  bool
	Interval time.Duration
}

type NotificationConfig struct {
	RealtimeEnabled bool
	// AllowedOrigins restricts websocket origins; empty allows any
	AllowedOrigins []string
	PingInterval   time.Duration
}

var defaults = map[string]interface{}{
	"service.name":                  ServiceName,
	"service.environment":           "dev",
	"server.http.host":              "0.0.0.0",
	"server.http.port":              8080,
	"server.http.read_timeout":      "15s",
	"server.http.write_timeout":     "15s",
	"server.grpc.host":              "0.0.0.0",
	"server.grpc.port":              9090,
	"database.host":                 "localhost",
	"database.port":                 5432,
	"database.sslmode":              "disable",
	"database.max_open_conns":       25,
	"database.max_idle_conns":       5,
	"database.conn_max_lifetime":    "30m",
	"database.conn_max_idle_time":   "5m",
	"database.slow_threshold":       "200ms",
	"database.log_level":            "warn",
	"redis.addr":                    "localhost:6379",
	"jwt.token_query_param":         "token",
	"log.level":                     "info",
	"log.format":                    "json",
	"log.output":                    "stdout",
	"email.port":                    587,
	"email.from_name":               "WikiGaiaLab",
	"achievements.catalog_path":     "configs/achievements.yaml",
	"achievements.seed_on_start":    true,
	"reconciler.enabled":            true,
	"reconciler.interval":           "1h",
	"notification.realtime_enabled": true,
	"notification.ping_interval":    "30s",
}

// Load reads configs/{APP_ENV}/community.yaml with COMMUNITY_ env overrides
func Load() (*Config, error) {
	cfg, err := config.Load(ServiceName, config.WithDefaults(defaults))
	if err != nil {
		return nil, err
	}
	return FromSource(cfg), nil
}

// FromSource maps a config source onto the typed configuration
func FromSource(cfg config.Config) *Config {
	appConfig := &Config{}

	// 서비스 정보
	appConfig.Service.Name = cfg.GetString("service.name")
	appConfig.Service.Environment = cfg.GetString("service.environment")
	appConfig.Service.Version = cfg.GetString("service.version")

	// 서버 설정
	appConfig.Server.HTTP.Host = cfg.GetString("server.http.host")
	appConfig.Server.HTTP.Port = cfg.GetInt("server.http.port")
	appConfig.Server.HTTP.ReadTimeout = cfg.GetDuration("server.http.read_timeout")
	appConfig.Server.HTTP.WriteTimeout = cfg.GetDuration("server.http.write_timeout")
	appConfig.Server.HTTP.Debug = cfg.GetBool("server.http.debug")
	appConfig.Server.GRPC.Host = cfg.GetString("server.grpc.host")
	appConfig.Server.GRPC.Port = cfg.GetInt("server.grpc.port")

	// 데이터베이스 설정
	appConfig.Database.Host = cfg.GetString("database.host")
	appConfig.Database.Port = cfg.GetInt("database.port")
	appConfig.Database.Name = cfg.GetString("database.name")
	appConfig.Database.User = cfg.GetString("database.user")
	appConfig.Database.Password = cfg.GetString("database.password")
	appConfig.Database.SSLMode = cfg.GetString("database.sslmode")
	appConfig.Database.MaxOpenConns = cfg.GetInt("database.max_open_conns")
	appConfig.Database.MaxIdleConns = cfg.GetInt("database.max_idle_conns")
	appConfig.Database.ConnMaxLifetime = cfg.GetDuration("database.conn_max_lifetime")
	appConfig.Database.ConnMaxIdleTime = cfg.GetDuration("database.conn_max_idle_time")
	appConfig.Database.SlowThreshold = cfg.GetDuration("database.slow_threshold")
	appConfig.Database.LogLevel = cfg.GetString("database.log_level")

	// Redis 설정
	appConfig.Redis.Addr = cfg.GetString("redis.addr")
	appConfig.Redis.Password = cfg.GetString("redis.password")
	appConfig.Redis.DB = cfg.GetInt("redis.db")

	// JWT 설정
	appConfig.JWT.Secret = cfg.GetString("jwt.secret")
	appConfig.JWT.TokenQueryParam = cfg.GetString("jwt.token_query_param")

	// 로그 설정
	appConfig.Log.Level = cfg.GetString("log.level")
	appConfig.Log.Format = cfg.GetString("log.format")
	appConfig.Log.Output = cfg.GetString("log.output")
	appConfig.Log.FilePath = cfg.GetString("log.file_path")
	appConfig.Log.Development = cfg.GetBool("log.development")

	// 이메일 설정
	appConfig.Email.Enabled = cfg.GetBool("email.enabled")
	appConfig.Email.Host = cfg.GetString("email.host")
	appConfig.Email.Port = cfg.GetInt("email.port")
	appConfig.Email.Username = cfg.GetString("email.username")
	appConfig.Email.Password = cfg.GetString("email.password")
	appConfig.Email.From = cfg.GetString("email.from")
	appConfig.Email.FromName = cfg.GetString("email.from_name")

	appConfig.Reputation = reputationFromSource(cfg)

	appConfig.Achievements.CatalogPath = cfg.GetString("achievements.catalog_path")
	appConfig.Achievements.SeedOnStart = cfg.GetBool("achievements.seed_on_start")

	appConfig.Reconciler.Enabled = cfg.GetBool("reconciler.enabled")
	appConfig.Reconciler.Interval = cfg.GetDuration("reconciler.interval")

	appConfig.Notification.RealtimeEnabled = cfg.GetBool("notification.realtime_enabled")
	appConfig.Notification.AllowedOrigins = cfg.GetStringSlice("notification.allowed_origins")
	appConfig.Notification.PingInterval = cfg.GetDuration("notification.ping_interval")

	return appConfig
}

// NewLogger builds the service logger from the log section
func (c *Config) NewLogger() (*zap.Logger, error) {
	return logger.NewZapLogger(logger.Config{
		Level:       c.Log.Level,
		Format:      c.Log.Format,
		Output:      c.Log.Output,
		FilePath:    c.Log.FilePath,
		Development: c.Log.Development,
	})
}
