package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func testCalendarConfig() CalendarConfig {
	return CalendarConfig{
		Timezone:         "Europe/Berlin",
		WeekStart:        "sunday",
		TrackCount:       4,
		HourHeightPx:     60,
		SnapMinutes:      30,
		MinDuration:      30 * time.Minute,
		ConfirmDrag:      true,
		EndingSoonWindow: time.Hour,
		MaxRecurrence:    10,
		NotifyDelay:      2 * time.Second,
	}
}

func TestCalendarConfig_Settings(t *testing.T) {
	s, err := testCalendarConfig().Settings()
	require.NoError(t, err)

	assert.Equal(t, "Europe/Berlin", s.Location.String())
	assert.Equal(t, time.Sunday, s.WeekStart)
	assert.Equal(t, 4, s.TrackCount)
	assert.Equal(t, 60.0, s.Mapper.HourHeight)
	assert.Equal(t, 30, s.Mapper.SnapMinutes)
	assert.Equal(t, 30*time.Minute, s.Mapper.MinDuration)
}

func TestCalendarConfig_Settings_MondayDefault(t *testing.T) {
	cfg := testCalendarConfig()
	cfg.WeekStart = "monday"

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, s.WeekStart)
}

func TestCalendarConfig_Settings_BadTimezone(t *testing.T) {
	cfg := testCalendarConfig()
	cfg.Timezone = "Mars/Olympus_Mons"

	_, err := cfg.Settings()
	assert.Error(t, err)
}

func TestCalendarConfig_Interaction(t *testing.T) {
	cfg := testCalendarConfig()
	s, err := cfg.Settings()
	require.NoError(t, err)

	ic := cfg.Interaction(s)
	assert.True(t, ic.ConfirmDrag)
	assert.False(t, ic.CoalesceResize)
	assert.Equal(t, s, ic.Settings)
}

func TestCalendarConfig_Events(t *testing.T) {
	cfg := testCalendarConfig()
	loc, err := cfg.Location()
	require.NoError(t, err)

	ec := cfg.Events(loc)
	assert.Equal(t, loc, ec.Location)
	assert.Equal(t, 30*time.Minute, ec.MinDuration)
	assert.Equal(t, time.Hour, ec.EndingSoonWindow)
	assert.Equal(t, 10, ec.MaxRecurrence)
	assert.Equal(t, 2*time.Second, ec.RescheduleNotifyDelay)
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  logger.Level
	}{
		{"debug", logger.DebugLevel},
		{"warn", logger.WarnLevel},
		{"error", logger.ErrorLevel},
		{"info", logger.InfoLevel},
		{"", logger.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, LoggerConfig{Level: tt.level}.LogLevel())
		})
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{
		Host:     "db",
		Port:     5433,
		User:     "tablu",
		Password: "secret",
		Database: "tablu",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5433 user=tablu password=secret dbname=tablu sslmode=disable", p.DSN())
}
