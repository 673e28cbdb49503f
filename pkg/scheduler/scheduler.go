package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Job is a task run every Interval, starting right away.
type Job struct {
	Name     string
	Interval time.Duration
	Task     func(ctx context.Context)
}

// Scheduler runs the background jobs of the api.
type Scheduler struct {
	scheduler gocron.Scheduler
}

// New registers every job, the ctx is handed to each run.
// A run still going when the next one is due delays it instead of overlapping.
func New(ctx context.Context, jobs ...Job) (*Scheduler, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	for _, job := range jobs {
		task := job.Task
		_, err = s.NewJob(
			gocron.DurationJob(job.Interval),
			gocron.NewTask(func() { task(ctx) }),
			gocron.WithName(job.Name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithStartAt(gocron.WithStartImmediately()),
		)
		if err != nil {
			s.Shutdown()
			return nil, fmt.Errorf("failed to create %s job: %w", job.Name, err)
		}
	}

	return &Scheduler{scheduler: s}, nil
}

// Start the scheduler, jobs run in the background.
func (s *Scheduler) Start() {
	s.scheduler.Start()
}

// Shutdown waits for the running jobs and stops the scheduler.
func (s *Scheduler) Shutdown() error {
	return s.scheduler.Shutdown()
}
