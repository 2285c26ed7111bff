package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

func TestWeekRange(t *testing.T) {
	// Thursday 2025-03-06.
	r := WeekRange(at(6, 15, 0), time.Monday, time.UTC)
	assert.Equal(t, at(3, 0, 0), r.Start)
	assert.Equal(t, at(9, 0, 0), r.End)

	r = WeekRange(at(6, 15, 0), time.Sunday, time.UTC)
	assert.Equal(t, at(2, 0, 0), r.Start)
	assert.Equal(t, at(8, 0, 0), r.End)
}

func TestMonthGridRange(t *testing.T) {
	r := MonthGridRange(at(15, 0, 0), time.Monday, time.UTC)

	// March 1st 2025 is a Saturday.
	assert.Equal(t, time.Date(2025, time.February, 24, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Len(t, r.Days(time.UTC), 42)
}

func TestPartition(t *testing.T) {
	events := []domain.Event{
		ev("s", at(3, 9, 0), at(3, 10, 0)),
		ev("m", at(3, 9, 0), at(4, 10, 0)),
		ev("bad", at(3, 10, 0), at(3, 9, 0)),
	}

	multi, single := Partition(events, time.UTC)

	assert.Equal(t, []string{"m"}, ids(multi))
	assert.Equal(t, []string{"s"}, ids(single))
}

func TestInRange(t *testing.T) {
	events := []domain.Event{
		ev("before", at(1, 9, 0), at(1, 10, 0)),
		ev("inside", at(4, 9, 0), at(4, 10, 0)),
		ev("spanning", at(1, 9, 0), at(20, 10, 0)),
		ev("after", at(12, 9, 0), at(12, 10, 0)),
	}

	got := InRange(events, WeekRange(at(4, 0, 0), time.Monday, time.UTC), time.UTC)

	assert.Equal(t, []string{"inside", "spanning"}, ids(got))
}

func TestMonth_Layout(t *testing.T) {
	events := []domain.Event{
		ev("long", at(3, 9, 0), at(6, 17, 0)),
		ev("short", at(5, 9, 0), at(6, 17, 0)),
	}

	m := Month(events, at(15, 0, 0), testSettings())

	assert.Equal(t, time.March, m.Month)
	assert.Equal(t, 2025, m.Year)
	require.Len(t, m.Weeks, 6)
	for _, w := range m.Weeks {
		assert.Len(t, w, 7)
	}

	// Second row starts Monday the 3rd; Wednesday is index 2.
	wed := m.Weeks[1][2]
	assert.Equal(t, at(5, 0, 0), wed.Date)
	require.Len(t, wed.Entries, 2)
	assert.NotEqual(t, wed.Entries[0].Track, wed.Entries[1].Track)
}

func TestWeek_Layout(t *testing.T) {
	events := []domain.Event{
		ev("multi", at(4, 9, 0), at(5, 11, 0)),
		ev("single", at(5, 9, 0), at(5, 10, 0)),
	}

	w := Week(events, at(5, 0, 0), testSettings())

	require.Len(t, w.Days, 7)
	require.Len(t, w.Banner, 7)
	assert.Len(t, w.Banner[1].Entries, 1, "multi-day event on Tuesday banner")
	assert.Empty(t, w.Banner[3].Entries)
	assert.Len(t, w.Days[2].Placements, 2, "Wednesday grid has the clipped multi-day event and the single one")
}

func TestYear_Counts(t *testing.T) {
	events := []domain.Event{
		ev("a", at(3, 9, 0), at(4, 10, 0)),
		ev("b", at(4, 9, 0), at(4, 10, 0)),
	}

	y := Year(events, 2025, testSettings())

	require.Len(t, y.Months, 12)
	mar := y.Months[2]
	assert.Equal(t, time.March, mar.Month)
	assert.Len(t, mar.Counts, 31)
	assert.Equal(t, 1, mar.Counts[2])
	assert.Equal(t, 2, mar.Counts[3])
	assert.Zero(t, mar.Counts[4])
	assert.Len(t, y.Months[1].Counts, 28)
}
