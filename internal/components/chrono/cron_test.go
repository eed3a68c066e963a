package chrono

import (
	"testing"
	"time"

	"github.com/Matheusmno/MWebCrawler/internal/components/telemetry"
	"github.com/Matheusmno/MWebCrawler/lib/timezone"
	"github.com/stretchr/testify/require"
)

func TestCron(t *testing.T) {
	tel := &telemetry.Recorder{}
	cron := NewStandardCron(tel, timezone.Location)
	defer cron.Stop()

	ran := make(chan struct{}, 1)
	err := cron.Cron("@every 1s", func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("job never ran")
	}

	require.Error(t, cron.Cron("not a spec", func() {}))
}
