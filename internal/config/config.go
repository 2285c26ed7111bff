package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/calendar"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/interaction"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/service"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Calendar  CalendarConfig  `yaml:"calendar"  validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel maps the configured level name onto wbf levels.
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
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"tablu"        validate:"required"`
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

// SchedulerConfig drives the booking status refresher.
type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1m" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

type CalendarConfig struct {
	Timezone         string        `yaml:"timezone"           env:"CALENDAR_TIMEZONE"           env-default:"UTC"    validate:"required"`
	WeekStart        string        `yaml:"week_start"         env:"CALENDAR_WEEK_START"         env-default:"monday" validate:"required,oneof=sunday monday"`
	TrackCount       int           `yaml:"track_count"        env:"CALENDAR_TRACK_COUNT"        env-default:"3"      validate:"min=1,max=10"`
	HourHeightPx     float64       `yaml:"hour_height_px"     env:"CALENDAR_HOUR_HEIGHT_PX"     env-default:"96"     validate:"gt=0"`
	SnapMinutes      int           `yaml:"snap_minutes"       env:"CALENDAR_SNAP_MINUTES"       env-default:"15"     validate:"min=1,max=60"`
	MinDuration      time.Duration `yaml:"min_duration"       env:"CALENDAR_MIN_DURATION"       env-default:"15m"    validate:"gt=0"`
	ConfirmDrag      bool          `yaml:"confirm_drag"       env:"CALENDAR_CONFIRM_DRAG"       env-default:"false"`
	CoalesceResize   bool          `yaml:"coalesce_resize"    env:"CALENDAR_COALESCE_RESIZE"    env-default:"false"`
	EndingSoonWindow time.Duration `yaml:"ending_soon_window" env:"CALENDAR_ENDING_SOON_WINDOW" env-default:"30m"    validate:"gt=0"`
	MaxRecurrence    int           `yaml:"max_recurrence"     env:"CALENDAR_MAX_RECURRENCE"     env-default:"52"     validate:"min=1,max=366"`
	NotifyDelay      time.Duration `yaml:"reschedule_notify_delay" env:"CALENDAR_RESCHEDULE_NOTIFY_DELAY" env-default:"5s" validate:"gt=0"`
}

func (c CalendarConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c CalendarConfig) Settings() (calendar.Settings, error) {
	loc, err := c.Location()
	if err != nil {
		return calendar.Settings{}, err
	}

	weekStart := time.Monday
	if c.WeekStart == "sunday" {
		weekStart = time.Sunday
	}

	return calendar.Settings{
		Location:   loc,
		WeekStart:  weekStart,
		TrackCount: c.TrackCount,
		Mapper:     calendar.NewMapper(c.HourHeightPx, c.SnapMinutes, c.MinDuration),
	}.Normalize(), nil
}

func (c CalendarConfig) Interaction(settings calendar.Settings) interaction.Config {
	return interaction.Config{
		Settings:       settings,
		ConfirmDrag:    c.ConfirmDrag,
		CoalesceResize: c.CoalesceResize,
	}
}

func (c CalendarConfig) Events(loc *time.Location) service.EventConfig {
	return service.EventConfig{
		Location:         loc,
		MinDuration:      c.MinDuration,
		EndingSoonWindow: c.EndingSoonWindow,
		MaxRecurrence:    c.MaxRecurrence,

		RescheduleNotifyDelay: c.NotifyDelay,
	}
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
