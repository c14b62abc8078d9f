package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ecodive/backoffice-server-go/internal/authz"
	"github.com/ecodive/backoffice-server-go/internal/config"
	"github.com/ecodive/backoffice-server-go/internal/metrics"
	"github.com/ecodive/backoffice-server-go/internal/repository"
)

// StatsJob periodically copies the dashboard tallies into Prometheus gauges.
type StatsJob struct {
	stats    repository.StatsRepository
	interval time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

func NewStatsJob(stats repository.StatsRepository, interval time.Duration) *StatsJob {
	return &StatsJob{
		stats:    stats,
		interval: interval,
		done:     make(chan struct{}),
	}
}

func (j *StatsJob) Start() {
	go j.run()
	log.Info().Dur("interval", j.interval).Msg("stats job started")
}

func (j *StatsJob) Stop() {
	j.stopOnce.Do(func() {
		close(j.done)
		log.Info().Msg("stats job stopped")
	})
}

func (j *StatsJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.refresh()

	for {
		select {
		case <-j.done:
			return
		case <-ticker.C:
			j.refresh()
		}
	}
}

func (j *StatsJob) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), config.StatsRefreshTimeout)
	defer cancel()

	counts, err := j.stats.DashboardCounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to refresh inventory gauges")
		return
	}

	metrics.UsersTotal.Set(float64(counts.TotalUsers))
	metrics.TeamMembersTotal.WithLabelValues(authz.RoleAdmin.String()).Set(float64(counts.AdminCount))
	metrics.TeamMembersTotal.WithLabelValues(authz.RoleViewer.String()).Set(float64(counts.ViewerCount))
	metrics.DiveClubsTotal.Set(float64(counts.ClubsCount))
	metrics.EventsThisMonth.Set(float64(counts.EventsThisMonth))
}
