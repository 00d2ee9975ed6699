package config

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/stpnv0/EventCheckIn/internal/domain"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Delivery  DeliveryConfig  `yaml:"delivery"  validate:"required"`
	CheckIn   CheckInConfig   `yaml:"checkin"   validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"eventcheckin" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// ConfigurePool applies the connection pool limits to db.
func (p *PostgresConfig) ConfigurePool(db *sql.DB) {
	db.SetMaxOpenConns(p.MaxOpenConns)
	db.SetMaxIdleConns(p.MaxIdleConns)
	db.SetConnMaxLifetime(p.ConnMaxLifetime)
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"30s" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken  string `yaml:"bot_token"   env:"TELEGRAM_BOT_TOKEN"   env-default:""`
	OpsChatID int64  `yaml:"ops_chat_id" env:"TELEGRAM_OPS_CHAT_ID" env-default:"0"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"      env:"SMTP_HOST"      env-default:""`
	Port     int    `yaml:"port"      env:"SMTP_PORT"      env-default:"587"                  validate:"min=1,max=65535"`
	Username string `yaml:"username"  env:"SMTP_USERNAME"  env-default:""`
	Password string `yaml:"password"  env:"SMTP_PASSWORD"  env-default:""`
	From     string `yaml:"from"      env:"SMTP_FROM"      env-default:"noreply@localhost"`
	FromName string `yaml:"from_name" env:"SMTP_FROM_NAME" env-default:"Event Check-In"`
}

// DeliveryConfig tunes credential email delivery and its retry policy.
type DeliveryConfig struct {
	MaxRetries     int           `yaml:"max_retries"     env:"DELIVERY_MAX_RETRIES"     env-default:"5"   validate:"min=1"`
	BaseDelay      time.Duration `yaml:"base_delay"      env:"DELIVERY_BASE_DELAY"      env-default:"30s" validate:"gt=0"`
	MaxDelay       time.Duration `yaml:"max_delay"       env:"DELIVERY_MAX_DELAY"       env-default:"1h"  validate:"gt=0"`
	AttemptTimeout time.Duration `yaml:"attempt_timeout" env:"DELIVERY_ATTEMPT_TIMEOUT" env-default:"30s" validate:"gt=0"`
	StaleAfter     time.Duration `yaml:"stale_after"     env:"DELIVERY_STALE_AFTER"     env-default:"5m"  validate:"gt=0"`
	Workers        int           `yaml:"workers"         env:"DELIVERY_WORKERS"         env-default:"4"   validate:"min=1"`
	BatchSize      int           `yaml:"batch_size"      env:"DELIVERY_BATCH_SIZE"      env-default:"100" validate:"min=1"`
}

func (d DeliveryConfig) Policy() domain.RetryPolicy {
	return domain.RetryPolicy{
		MaxRetries:     d.MaxRetries,
		BaseDelay:      d.BaseDelay,
		MaxDelay:       d.MaxDelay,
		AttemptTimeout: d.AttemptTimeout,
		StaleAfter:     d.StaleAfter,
	}
}

type CheckInConfig struct {
	RSVPGrace        time.Duration `yaml:"rsvp_grace"        env:"CHECKIN_RSVP_GRACE"        env-default:"12h"`
	StandaloneExpiry bool          `yaml:"standalone_expiry" env:"CHECKIN_STANDALONE_EXPIRY" env-default:"false"`
	StandaloneGrace  time.Duration `yaml:"standalone_grace"  env:"CHECKIN_STANDALONE_GRACE"  env-default:"0s"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
