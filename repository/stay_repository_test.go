// repository/stay_repository_test.go
package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuditWindowIsHalfOpen(t *testing.T) {
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	start, end := auditWindow(date)

	assert.Equal(t, date, start)
	assert.Equal(t, date.AddDate(0, 0, 1), end)

	// A check-in at exactly the next midnight sits on the boundary and must
	// fall outside tonight's window (the query uses a strict upper bound).
	nextMidnight := date.AddDate(0, 0, 1)
	assert.False(t, nextMidnight.Before(end))

	lastMoment := nextMidnight.Add(-time.Nanosecond)
	assert.True(t, lastMoment.Before(end))
}
