package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/csanna/moviebrowse/internal/controllers"
	"github.com/csanna/moviebrowse/internal/services/tmdb"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Monitor periodically probes the remote API host and keeps an online flag
// the API layer consults before issuing network requests. While offline, list
// requests are degraded to the favorites store instead of hitting the network.
type Monitor struct {
	cron   *cron.Cron
	client *tmdb.Client
	probes *controllers.Loader[bool]
	online atomic.Bool
	logger *logrus.Logger
}

// NewMonitor creates a new reachability monitor
func NewMonitor(client *tmdb.Client, logger *logrus.Logger) *Monitor {
	m := &Monitor{
		cron:   cron.New(),
		client: client,
		probes: controllers.NewLoader[bool](),
		logger: logger,
	}
	// Assume online until the first probe says otherwise
	m.online.Store(true)
	return m
}

// Start runs one immediate probe and schedules the recurring one
func (m *Monitor) Start(schedule string) error {
	m.logger.Info("Starting reachability monitor")

	_, err := m.cron.AddFunc(schedule, m.runProbe)
	if err != nil {
		return fmt.Errorf("failed to add probe job: %w", err)
	}

	m.cron.Start()
	m.runProbe()

	return nil
}

// Stop stops the monitor
func (m *Monitor) Stop() {
	m.logger.Info("Stopping reachability monitor")
	m.cron.Stop()
}

// Online reports whether the latest probe reached the API host
func (m *Monitor) Online() bool {
	return m.online.Load()
}

// runProbe restarts the probe slot. A hung probe is abandoned by the next
// tick and its late result is dropped, so only the latest probe decides the
// flag.
func (m *Monitor) runProbe() {
	m.probes.Restart(context.Background(),
		func(ctx context.Context) (bool, error) {
			err := m.client.Probe(ctx)
			return err == nil, err
		},
		func(reachable bool, err error) {
			wasOnline := m.online.Swap(reachable)
			switch {
			case !reachable && wasOnline:
				m.logger.WithError(err).Warn("API host unreachable, serving favorites only")
			case reachable && !wasOnline:
				m.logger.Info("API host reachable again")
			}
		})
}
