package scheduler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/csanna/moviebrowse/internal/config"
	"github.com/csanna/moviebrowse/internal/services/tmdb"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testMonitor(t *testing.T, host string) *Monitor {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	client, err := tmdb.NewClient(&config.Config{
		TMDBAPIKey:  "test-key",
		TMDBAPIHost: host,
	}, logger)
	require.NoError(t, err)

	return NewMonitor(client, logger)
}

func TestMonitorTracksReachability(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	monitor := testMonitor(t, server.URL)

	require.True(t, monitor.Online(), "monitor starts optimistic")

	server.Close()
	monitor.runProbe()
	require.Eventually(t, func() bool { return !monitor.Online() },
		10*time.Second, 10*time.Millisecond, "probe against a closed server must flip the flag")
}

func TestMonitorRecovers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	monitor := testMonitor(t, server.URL)
	monitor.online.Store(false)

	monitor.runProbe()
	require.Eventually(t, func() bool { return monitor.Online() },
		10*time.Second, 10*time.Millisecond, "probe against a live server must restore the flag")
}
