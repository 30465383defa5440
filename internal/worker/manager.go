package worker

import (
	"github.com/robfig/cron/v3"

	"github.com/murad/unidir/internal/app/repositories"
	"github.com/murad/unidir/internal/cache"
	"github.com/murad/unidir/internal/config"
	"github.com/murad/unidir/internal/pkg/logger"
)

// Manager schedules the background maintenance jobs: listing cache
// refresh and numbering capacity checks.
type Manager struct {
	cron  *cron.Cron
	cfg   *config.Config
	repos *repositories.Repositories
	cache *cache.Client
}

// NewManager creates a new worker manager
func NewManager(cfg *config.Config, repos *repositories.Repositories, directoryCache *cache.Client) *Manager {
	// Seconds precision so schedules like "0 */10 * * * *" work
	c := cron.New(cron.WithSeconds())

	return &Manager{
		cron:  c,
		cfg:   cfg,
		repos: repos,
		cache: directoryCache,
	}
}

// Start registers and starts all jobs
func (m *Manager) Start() error {
	logger.Info().Msg("Starting worker jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	logger.Info().Msg("Worker jobs started")
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish
func (m *Manager) Stop() {
	logger.Info().Msg("Stopping worker jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("Worker jobs stopped")
}

func (m *Manager) registerJobs() error {
	_, err := m.cron.AddFunc(m.cfg.Worker.CacheRefreshSpec, func() {
		logger.Debug().Str("job", "refresh_listing_cache").Msg("Worker job starting")
		m.RefreshListingCache()
	})
	if err != nil {
		return err
	}

	_, err = m.cron.AddFunc(m.cfg.Worker.CapacityCheckSpec, func() {
		logger.Debug().Str("job", "check_numbering_capacity").Msg("Worker job starting")
		m.CheckNumberingCapacity()
	})
	if err != nil {
		return err
	}

	return nil
}
