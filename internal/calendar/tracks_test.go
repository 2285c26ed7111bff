package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

func march() Range {
	return MonthRange(at(1, 0, 0), time.UTC)
}

func TestAllocateTracks_OverlappingSpansGetDistinctTracks(t *testing.T) {
	monThu := ev("long", at(3, 9, 0), at(6, 17, 0))
	wedThu := ev("short", at(5, 9, 0), at(6, 17, 0))

	res := AllocateTracks([]domain.Event{wedThu, monThu}, march(), 3, time.UTC)

	long, ok := res.Track("long")
	require.True(t, ok)
	short, ok := res.Track("short")
	require.True(t, ok)
	assert.Equal(t, 0, long, "longer span is placed first")
	assert.NotEqual(t, long, short)
	assert.Empty(t, res.Overflow)
}

func TestAllocateTracks_ReusesTrackOnFreeDays(t *testing.T) {
	monTue := ev("a", at(3, 9, 0), at(4, 9, 0))
	thuFri := ev("b", at(6, 9, 0), at(7, 9, 0))

	res := AllocateTracks([]domain.Event{monTue, thuFri}, march(), 3, time.UTC)

	assert.Equal(t, 0, res.Positions["a"])
	assert.Equal(t, 0, res.Positions["b"])
}

func TestAllocateTracks_MultiDayBeforeSingleDay(t *testing.T) {
	single := ev("single", at(4, 8, 0), at(4, 9, 0))
	multi := ev("multi", at(3, 9, 0), at(5, 9, 0))

	res := AllocateTracks([]domain.Event{single, multi}, march(), 3, time.UTC)

	assert.Equal(t, 0, res.Positions["multi"])
	assert.Equal(t, 1, res.Positions["single"])
}

func TestAllocateTracks_Overflow(t *testing.T) {
	events := []domain.Event{
		ev("a", at(10, 9, 0), at(10, 10, 0)),
		ev("b", at(10, 11, 0), at(10, 12, 0)),
		ev("c", at(10, 13, 0), at(10, 14, 0)),
		ev("d", at(10, 15, 0), at(10, 16, 0)),
	}

	res := AllocateTracks(events, march(), 3, time.UTC)

	assert.Len(t, res.Positions, 3)
	require.Len(t, res.Overflow, 1)
	assert.Equal(t, "d", res.Overflow[0].ID)
	assert.Equal(t, []string{"d"}, ids(res.OverflowOn(at(10, 0, 0))))
	assert.Empty(t, res.OverflowOn(at(11, 0, 0)))
}

func TestAllocateTracks_ClampsToRange(t *testing.T) {
	// Starts in February; only its March days are occupied.
	early := ev("early", time.Date(2025, time.February, 25, 9, 0, 0, 0, time.UTC), at(2, 9, 0))
	later := ev("later", at(3, 9, 0), at(4, 9, 0))

	res := AllocateTracks([]domain.Event{early, later}, march(), 1, time.UTC)

	assert.Equal(t, 0, res.Positions["early"])
	assert.Equal(t, 0, res.Positions["later"])
}

func TestAllocateTracks_SkipsOutOfRangeAndInvalid(t *testing.T) {
	april := ev("april", time.Date(2025, time.April, 2, 9, 0, 0, 0, time.UTC), time.Date(2025, time.April, 2, 10, 0, 0, 0, time.UTC))
	bad := ev("bad", at(5, 10, 0), at(5, 9, 0))

	res := AllocateTracks([]domain.Event{april, bad}, march(), 3, time.UTC)

	assert.Empty(t, res.Positions)
	assert.Empty(t, res.Overflow)
}

func TestAllocateTracks_NoSharedDayInOneTrack(t *testing.T) {
	var events []domain.Event
	for i := 0; i < 20; i++ {
		start := at(1+(i*3)%25, 9, 0)
		end := start.AddDate(0, 0, i%4).Add(time.Hour)
		events = append(events, ev(string(rune('a'+i)), start, end))
	}

	res := AllocateTracks(events, march(), 3, time.UTC)

	byID := map[string]domain.Event{}
	for _, e := range events {
		byID[e.ID] = e
	}
	for _, day := range march().Days(time.UTC) {
		seen := map[int]string{}
		for id, track := range res.Positions {
			if !Touches(byID[id], day, time.UTC) {
				continue
			}
			other, dup := seen[track]
			assert.False(t, dup, "%s and %s share track %d on %s", id, other, track, day.Format(time.DateOnly))
			seen[track] = id
		}
	}
}

func TestAllocateTracks_Idempotent(t *testing.T) {
	events := []domain.Event{
		ev("a", at(3, 9, 0), at(6, 9, 0)),
		ev("b", at(5, 9, 0), at(6, 9, 0)),
		ev("c", at(5, 12, 0), at(5, 13, 0)),
		ev("d", at(5, 14, 0), at(5, 15, 0)),
	}

	first := AllocateTracks(events, march(), 3, time.UTC)
	second := AllocateTracks(events, march(), 3, time.UTC)

	assert.Equal(t, first.Positions, second.Positions)
	assert.Equal(t, ids(first.Overflow), ids(second.Overflow))
}
