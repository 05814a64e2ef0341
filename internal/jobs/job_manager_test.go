package jobs

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	name     string
	leader   bool
	interval time.Duration
	runs     atomic.Int64
}

func (j *countingJob) Name() string             { return j.name }
func (j *countingJob) RequiresLeadership() bool { return j.leader }
func (j *countingJob) Interval() time.Duration  { return j.interval }

func (j *countingJob) Run(ctx context.Context) error {
	j.runs.Add(1)
	return nil
}

func newTestJobManager() *JobManager {
	return NewJobManager(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestJobManagerRunsJobImmediately(t *testing.T) {
	jm := newTestJobManager()
	job := &countingJob{name: "refresh", interval: time.Hour}
	jm.Register(job)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	jm.Start(ctx)

	require.Eventually(t, func() bool {
		return job.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	jm.Shutdown(context.Background())
	assert.Equal(t, int64(1), job.runs.Load(), "an hour-long interval means exactly the initial run")
}

func TestJobManagerRunsLeaderJobsWithoutElection(t *testing.T) {
	jm := newTestJobManager()
	job := &countingJob{name: "refresh", leader: true, interval: time.Hour}
	jm.Register(job)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	jm.Start(ctx)

	require.Eventually(t, func() bool {
		return job.runs.Load() >= 1
	}, time.Second, 5*time.Millisecond, "a single instance is its own leader")

	jm.Shutdown(context.Background())
}

func TestJobManagerRunsOnInterval(t *testing.T) {
	jm := newTestJobManager()
	job := &countingJob{name: "refresh", interval: 10 * time.Millisecond}
	jm.Register(job)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	jm.Start(ctx)

	require.Eventually(t, func() bool {
		return job.runs.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	jm.Shutdown(context.Background())
}

func TestJobManagerShutdownStopsJobs(t *testing.T) {
	jm := newTestJobManager()
	job := &countingJob{name: "refresh", interval: 10 * time.Millisecond}
	jm.Register(job)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	jm.Start(ctx)

	require.Eventually(t, func() bool {
		return job.runs.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	jm.Shutdown(context.Background())

	settled := job.runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, job.runs.Load())
}

func TestJobManagerSkipsJobWithoutInterval(t *testing.T) {
	jm := newTestJobManager()
	job := &countingJob{name: "refresh", interval: 0}
	jm.Register(job)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	jm.Start(ctx)

	time.Sleep(30 * time.Millisecond)
	jm.Shutdown(context.Background())

	assert.Equal(t, int64(0), job.runs.Load())
}
