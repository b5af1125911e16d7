package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolMonitor_Observe(t *testing.T) {
	var buf bytes.Buffer
	m := &poolMonitor{
		logger:    newCapturingLogger(&buf),
		warnAfter: 50 * time.Millisecond,
		prev:      sql.DBStats{WaitCount: 10, WaitDuration: time.Second},
	}

	// No new waits.
	m.observe(context.Background(), sql.DBStats{WaitCount: 10, WaitDuration: time.Second})
	assert.Empty(t, buf.String())

	// Short waits stay at debug level.
	m.observe(context.Background(), sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond})
	lines := readLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "DEBUG", lines[0].Level)
	buf.Reset()

	// Long waits warn; the delta is taken from the previous sample.
	m.observe(context.Background(), sql.DBStats{WaitCount: 14, WaitDuration: 2 * time.Second})
	lines = readLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "WARN", lines[0].Level)
	assert.Equal(t, "Postgres pool wait", lines[0].Msg)
	assert.Equal(t, int64(14), m.prev.WaitCount)
}
