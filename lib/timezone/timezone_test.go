package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	now := Now()
	require.Equal(t, Location, now.Location())
	require.WithinDuration(t, time.Now(), now, time.Minute)

	// Brasília has not observed daylight saving time since 2019
	_, offset := time.Date(2024, time.January, 15, 12, 0, 0, 0, Location).Zone()
	require.Equal(t, -3*60*60, offset)
}
