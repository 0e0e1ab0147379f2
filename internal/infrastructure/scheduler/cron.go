package scheduler

import (
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler manages cron jobs for the notifier sweep.
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
	mu   sync.Mutex
}

// NewScheduler creates and starts a cron scheduler.
func NewScheduler(log zerolog.Logger) *Scheduler {
	c := cron.New()
	c.Start()
	log.Info().Msg("cron scheduler started")
	return &Scheduler{cron: c, log: log}
}

// AddJob adds a new job to the scheduler. spec follows the cron format,
// including the @every shorthand.
func (s *Scheduler) AddJob(spec string, cmd func()) (cron.EntryID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.cron.AddFunc(spec, cmd)
	if err != nil {
		return 0, fmt.Errorf("failed to add cron job: %w", err)
	}
	s.log.Info().Int("job_id", int(id)).Str("spec", spec).Msg("added cron job")
	return id, nil
}

// RemoveJob removes a job from the scheduler by its EntryID.
func (s *Scheduler) RemoveJob(id cron.EntryID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cron.Remove(id)
}

// Stop stops the cron scheduler and waits for running jobs to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
		s.log.Info().Msg("cron scheduler stopped")
	}
}
