package calendar

import "time"

const (
	DefaultTrackCount  = 3
	DefaultHourHeight  = 96
	DefaultSnapMinutes = 15
	DefaultMinDuration = 15 * time.Minute
)

// Settings is the explicit context every layout function and the interaction
// machine work with. All date arithmetic happens in Location.
type Settings struct {
	Location   *time.Location
	WeekStart  time.Weekday
	TrackCount int
	Mapper     Mapper
}

func DefaultSettings() Settings {
	return Settings{
		Location:   time.UTC,
		WeekStart:  time.Monday,
		TrackCount: DefaultTrackCount,
		Mapper:     NewMapper(DefaultHourHeight, DefaultSnapMinutes, DefaultMinDuration),
	}
}

// Normalize fills zero values with defaults.
func (s Settings) Normalize() Settings {
	if s.Location == nil {
		s.Location = time.UTC
	}
	if s.TrackCount <= 0 {
		s.TrackCount = DefaultTrackCount
	}
	s.Mapper = s.Mapper.normalize()
	return s
}
