package cron

import (
	log "log/slog"

	"risingcreators/internal/api/config"
	"risingcreators/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine             *cron.Cron
	cfg                config.JobsConfig
	autoDiscoveryJob   *job.AutoDiscoveryJob
	snapshotRefreshJob *job.SnapshotRefreshJob
}

func NewCronManager(autoDiscoveryJob *job.AutoDiscoveryJob, snapshotRefreshJob *job.SnapshotRefreshJob) *Manager {
	return &Manager{
		engine:             cron.New(cron.WithSeconds()),
		cfg:                config.Cfg.Jobs,
		autoDiscoveryJob:   autoDiscoveryJob,
		snapshotRefreshJob: snapshotRefreshJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.cfg.DiscoverySchedule, s.autoDiscoveryJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob(s.cfg.RefreshSchedule, s.snapshotRefreshJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
