package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCommit(t *testing.T) {
	ok := testutil.ToFloat64(commitCounter.WithLabelValues("success"))
	failed := testutil.ToFloat64(commitCounter.WithLabelValues("failure"))

	RecordCommit(nil, 10*time.Millisecond)
	RecordCommit(errors.New("conflict"), 5*time.Millisecond)

	assert.Equal(t, ok+1, testutil.ToFloat64(commitCounter.WithLabelValues("success")))
	assert.Equal(t, failed+1, testutil.ToFloat64(commitCounter.WithLabelValues("failure")))
}

func TestRecordOverflow_IgnoresNonPositive(t *testing.T) {
	before := testutil.ToFloat64(overflowCounter)

	RecordOverflow(0)
	RecordOverflow(-2)
	assert.Equal(t, before, testutil.ToFloat64(overflowCounter))

	RecordOverflow(3)
	assert.Equal(t, before+3, testutil.ToFloat64(overflowCounter))
}

func TestRecordStatusRefresh(t *testing.T) {
	ts := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	RecordStatusRefresh(ts)
	assert.Equal(t, float64(ts.Unix()), testutil.ToFloat64(statusGauge))

	RecordStatusRefresh(time.Time{})
	assert.Equal(t, float64(ts.Unix()), testutil.ToFloat64(statusGauge))
}
