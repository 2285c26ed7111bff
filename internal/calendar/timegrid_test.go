package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMapper_Conversions(t *testing.T) {
	m := NewMapper(96, 15, 15*time.Minute)

	assert.InDelta(t, 60, m.MinutesFromTop(96), 0.0001)
	assert.InDelta(t, 30, m.MinutesFromTop(48), 0.0001)
	assert.InDelta(t, 96, m.PixelsFromMinutes(60), 0.0001)
	assert.InDelta(t, 32, m.PixelsFromMinutes(20), 0.0001)
	assert.InDelta(t, 2304, m.DayHeight(), 0.0001)
}

func TestMapper_DurationFromPixels(t *testing.T) {
	m := NewMapper(96, 15, 15*time.Minute)

	tests := []struct {
		name string
		px   float64
		want time.Duration
	}{
		{"fifty minutes", m.PixelsFromMinutes(50), 50 * time.Minute},
		{"rounds down", m.PixelsFromMinutes(50.4), 50 * time.Minute},
		{"rounds up", m.PixelsFromMinutes(50.6), 51 * time.Minute},
		{"single pixel floors to minimum", 1, 15 * time.Minute},
		{"zero floors to minimum", 0, 15 * time.Minute},
		{"negative floors to minimum", -40, 15 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.DurationFromPixels(tt.px))
		})
	}
}

func TestMapper_TimeAt(t *testing.T) {
	m := NewMapper(96, 15, 15*time.Minute)
	day := at(3, 0, 0)

	assert.Equal(t, at(3, 14, 0), m.TimeAt(day, 14*96+10, time.UTC))
	assert.Equal(t, at(3, 14, 15), m.TimeAt(day, 14*96+25, time.UTC))
	assert.Equal(t, at(3, 0, 0), m.TimeAt(day, -50, time.UTC))
	assert.Equal(t, at(3, 23, 45), m.TimeAt(day, 30*96, time.UTC))
}

func TestMapper_OffsetAndHeight(t *testing.T) {
	m := NewMapper(96, 15, 15*time.Minute)

	assert.InDelta(t, 9.5*96, m.Offset(at(3, 9, 30), time.UTC), 0.0001)
	assert.InDelta(t, 48, m.Height(at(3, 9, 0), at(3, 9, 30)), 0.0001)
}

func TestNewMapper_Defaults(t *testing.T) {
	m := NewMapper(0, 0, 0)

	assert.Equal(t, float64(DefaultHourHeight), m.HourHeight)
	assert.Equal(t, DefaultSnapMinutes, m.SnapMinutes)
	assert.Equal(t, DefaultMinDuration, m.MinDuration)
}
