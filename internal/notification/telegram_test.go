package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

func newTestNotifier(t *testing.T, loc *time.Location) *TelegramNotifier {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	n, err := NewTelegramNotifier("", loc, log)
	require.NoError(t, err)
	return n
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n := newTestNotifier(t, nil)
	chatID := int64(42)
	user := &domain.User{ID: "u1", TelegramChatID: &chatID}
	event := &domain.Event{ID: "e1", Title: "Campaign", Status: domain.EventStatusActive}

	assert.Nil(t, n.bot)
	assert.NotPanics(t, func() {
		n.NotifyCommitFailed(context.Background(), user, event, "db down")
		n.NotifyEventRescheduled(context.Background(), user, event)
		n.NotifyStatusChanged(context.Background(), user, event)
	})
}

func TestTelegramNotifier_IntervalUsesCalendarLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	n := newTestNotifier(t, loc)
	start := time.Date(2025, time.March, 3, 11, 0, 0, 0, time.UTC)
	e := &domain.Event{Start: start, End: start.Add(90 * time.Minute)}

	assert.Equal(t, "03.03.2025 14:00 - 03.03.2025 15:30 (UTC+3)", n.interval(e))
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "is ending soon", statusText(domain.EventStatusEndingSoon))
	assert.Equal(t, "expired", statusText(domain.EventStatusExpired))
	assert.Equal(t, "is waiting", statusText(domain.EventStatusWaiting))
}
