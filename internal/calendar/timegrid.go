package calendar

import (
	"math"
	"time"
)

// Mapper converts between vertical pixel offsets in a 24-hour column and
// time of day.
type Mapper struct {
	HourHeight  float64
	SnapMinutes int
	MinDuration time.Duration
}

func NewMapper(hourHeight float64, snapMinutes int, minDuration time.Duration) Mapper {
	return Mapper{
		HourHeight:  hourHeight,
		SnapMinutes: snapMinutes,
		MinDuration: minDuration,
	}.normalize()
}

func (m Mapper) normalize() Mapper {
	if m.HourHeight <= 0 {
		m.HourHeight = DefaultHourHeight
	}
	if m.SnapMinutes <= 0 {
		m.SnapMinutes = DefaultSnapMinutes
	}
	if m.MinDuration <= 0 {
		m.MinDuration = DefaultMinDuration
	}
	return m
}

func (m Mapper) MinutesFromTop(px float64) float64 {
	return px * 60 / m.HourHeight
}

func (m Mapper) PixelsFromMinutes(minutes float64) float64 {
	return minutes * m.HourHeight / 60
}

// DayHeight is the pixel height of a full 24-hour column.
func (m Mapper) DayHeight() float64 {
	return 24 * m.HourHeight
}

// DurationFromPixels turns a pixel height into a duration rounded to the
// nearest whole minute and never shorter than MinDuration.
func (m Mapper) DurationFromPixels(px float64) time.Duration {
	minutes := math.Round(m.MinutesFromTop(px))
	return m.ClampDuration(time.Duration(minutes) * time.Minute)
}

// ClampDuration enforces the MinDuration floor.
func (m Mapper) ClampDuration(d time.Duration) time.Duration {
	if d < m.MinDuration {
		return m.MinDuration
	}
	return d
}

// Offset is the pixel distance of t from the start of its day in loc.
func (m Mapper) Offset(t time.Time, loc *time.Location) float64 {
	minutes := t.Sub(StartOfDay(t, loc)).Minutes()
	return m.PixelsFromMinutes(minutes)
}

// Height is the pixel height of the interval [start, end).
func (m Mapper) Height(start, end time.Time) float64 {
	return m.PixelsFromMinutes(end.Sub(start).Minutes())
}

// TimeAt returns the time on day under a pointer at px, snapped down to the
// snap granularity and kept inside the day.
func (m Mapper) TimeAt(day time.Time, px float64, loc *time.Location) time.Time {
	minutes := int(math.Floor(m.MinutesFromTop(px)))
	minutes -= minutes % m.SnapMinutes
	if minutes < 0 {
		minutes = 0
	}
	if last := 24*60 - m.SnapMinutes; minutes > last {
		minutes = last
	}
	return StartOfDay(day, loc).Add(time.Duration(minutes) * time.Minute)
}
