// Package scheduler runs background jobs on cron schedules.
package scheduler

import (
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// Job is a unit of background work.
type Job interface {
	Run() error
	Name() string
}

// Scheduler runs registered jobs on their schedules. A job whose previous run is still
// in progress skips its next tick.
type Scheduler struct {
	cron *cron.Cron
	log  *slog.Logger

	mu   sync.Mutex
	jobs []Job
}

// New creates a scheduler. Schedules use the standard five field format or descriptors
// such as "@every 10m".
func New(log *slog.Logger) *Scheduler {
	log = log.With(slog.String("component", "scheduler"))
	cronLog := cronLogger{log: log}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		log: log,
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Scheduler started", slog.Int("jobs", len(s.cron.Entries())))
}

// Stop stops the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("Scheduler stopped")
}

// AddJob registers job on schedule.
func (s *Scheduler) AddJob(schedule string, job Job) error {
	if _, err := s.cron.AddFunc(schedule, func() { s.run(job) }); err != nil {
		return err
	}
	s.mu.Lock()
	s.jobs = append(s.jobs, job)
	s.mu.Unlock()

	s.log.Info("Job registered", slog.String("schedule", schedule), slog.String("job", job.Name()))
	return nil
}

// RunAll runs every registered job once, outside its schedule, and returns how many failed.
func (s *Scheduler) RunAll() int {
	s.mu.Lock()
	jobs := append([]Job(nil), s.jobs...)
	s.mu.Unlock()

	failed := 0
	for _, job := range jobs {
		if !s.run(job) {
			failed++
		}
	}
	return failed
}

func (s *Scheduler) run(job Job) bool {
	s.log.Debug("Running job", slog.String("job", job.Name()))
	if err := job.Run(); err != nil {
		s.log.Warn("Job failed", slog.String("job", job.Name()), slog.String("error", err.Error()))
		return false
	}
	s.log.Debug("Job completed", slog.String("job", job.Name()))
	return true
}

// cronLogger routes cron's own messages into slog.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append([]interface{}{slog.String("error", err.Error())}, keysAndValues...)...)
}
