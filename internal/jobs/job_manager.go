package jobs

import (
	"context"
	"errors"
	"finboard/internal/distributed"
	"log/slog"
	"sync"
	"time"
)

// Job is one unit of periodic background work. Run performs a single pass;
// the manager owns the schedule and runs each job once at start and then on
// its interval.
type Job interface {
	Name() string
	Run(ctx context.Context) error
	Interval() time.Duration
	RequiresLeadership() bool
}

// JobManager schedules registered jobs. Leader-gated jobs run only while this
// instance holds the election lease; without an election configured a single
// instance is its own leader and runs everything.
type JobManager struct {
	jobs     []Job
	election *distributed.Election
	logger   *slog.Logger
	wg       sync.WaitGroup

	mu      sync.Mutex
	running map[string]context.CancelFunc
}

func NewJobManager(election *distributed.Election, logger *slog.Logger) *JobManager {
	return &JobManager{
		election: election,
		logger:   logger,
		running:  make(map[string]context.CancelFunc),
	}
}

func (jm *JobManager) Register(job Job) {
	jm.jobs = append(jm.jobs, job)
}

func (jm *JobManager) Start(ctx context.Context) {
	for _, job := range jm.jobs {
		if !job.RequiresLeadership() {
			jm.launch(ctx, job)
		}
	}

	if jm.election == nil {
		jm.startLeaderJobs(ctx)
		return
	}

	jm.wg.Add(1)
	go jm.watchLeadership(ctx)
}

// Shutdown cancels every running job and waits for them, bounded by ctx.
func (jm *JobManager) Shutdown(ctx context.Context) {
	jm.mu.Lock()
	for name, cancel := range jm.running {
		cancel()
		delete(jm.running, name)
	}
	jm.mu.Unlock()

	done := make(chan struct{})
	go func() {
		jm.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		jm.logger.Debug("all background jobs stopped")
	case <-ctx.Done():
		jm.logger.Warn("background jobs did not stop before the shutdown deadline")
	}
}

func (jm *JobManager) watchLeadership(ctx context.Context) {
	defer jm.wg.Done()

	ticker := time.NewTicker(jm.election.TTL / 3)
	defer ticker.Stop()

	var wasLeader bool
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			isLeader := jm.election.IsLeader()
			switch {
			case isLeader && !wasLeader:
				jm.logger.Info("gained leadership, starting leader jobs")
				jm.startLeaderJobs(ctx)
			case !isLeader && wasLeader:
				jm.logger.Info("lost leadership, stopping leader jobs")
				jm.stopLeaderJobs()
			}
			wasLeader = isLeader
		}
	}
}

func (jm *JobManager) startLeaderJobs(ctx context.Context) {
	for _, job := range jm.jobs {
		if job.RequiresLeadership() {
			jm.launch(ctx, job)
		}
	}
}

func (jm *JobManager) stopLeaderJobs() {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	for _, job := range jm.jobs {
		if !job.RequiresLeadership() {
			continue
		}
		if cancel, exists := jm.running[job.Name()]; exists {
			cancel()
			delete(jm.running, job.Name())
		}
	}
}

func (jm *JobManager) launch(ctx context.Context, job Job) {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	if _, exists := jm.running[job.Name()]; exists {
		return
	}

	interval := job.Interval()
	if interval <= 0 {
		jm.logger.Error("job has no usable interval, not scheduling", "job", job.Name(), "interval", interval)
		return
	}

	jobCtx, cancel := context.WithCancel(ctx)
	jm.running[job.Name()] = cancel

	jm.wg.Add(1)
	go jm.loop(jobCtx, job, interval)
}

func (jm *JobManager) loop(ctx context.Context, job Job, interval time.Duration) {
	defer jm.wg.Done()

	jm.logger.Debug("scheduling job", "job", job.Name(), "interval", interval)

	jm.runOnce(ctx, job)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			jm.runOnce(ctx, job)
		}
	}
}

func (jm *JobManager) runOnce(ctx context.Context, job Job) {
	if err := job.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		jm.logger.Error("job run failed", "job", job.Name(), "error", err)
	}
}
