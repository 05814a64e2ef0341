package distributed

import (
	"context"
	"finboard/internal/config"
	"finboard/internal/metrics"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const leaderKey = "finboard:leader"

// Election is redis-backed leader election for multi-replica deployments. One
// replica holds the lease and runs the leader-only jobs; the rest keep
// campaigning on a TTL/3 cadence.
type Election struct {
	Redis      *redis.Client
	InstanceID string // Unique identifier
	TTL        time.Duration
	Logger     *slog.Logger
	isLeader   bool
	mu         sync.RWMutex
}

func (e *Election) IsLeader() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.isLeader
}

func (e *Election) campaign(ctx context.Context) {
	ok, err := e.Redis.SetNX(ctx, leaderKey, e.InstanceID, e.TTL).Result()
	if err != nil {
		e.Logger.Error("failed to campaign for leadership", "error", err, "instance", e.InstanceID)
		return
	}

	e.mu.Lock()
	wasLeader := e.isLeader

	if ok {
		e.isLeader = true
	} else {
		currentLeader, err := e.Redis.Get(ctx, leaderKey).Result()
		if err == nil && currentLeader == e.InstanceID {
			e.isLeader = true
			e.Redis.Expire(ctx, leaderKey, e.TTL)
		} else {
			e.isLeader = false
		}
	}

	e.mu.Unlock()

	if e.isLeader && !wasLeader {
		e.Logger.Info("became leader", "instance", e.InstanceID)
		metrics.IsLeader.Set(1)
		metrics.LeadershipChanges.Inc()
	} else if !e.isLeader && wasLeader {
		e.Logger.Info("lost leadership", "instance", e.InstanceID)
		metrics.IsLeader.Set(0)
		metrics.LeadershipChanges.Inc()
	}
}

func (e *Election) Start(ctx context.Context) {
	interval := e.TTL / 3
	if interval <= 0 {
		interval = config.DefaultDistributedConfig.TTL / 3
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.campaign(ctx)

	for {
		select {
		case <-ctx.Done():
			e.resign(ctx)
			return
		case <-ticker.C:
			e.campaign(ctx)
		}
	}
}

func (e *Election) resign(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.isLeader {
		return
	}

	script := `
        if redis.call("get", KEYS[1]) == ARGV[1] then
            return redis.call("del", KEYS[1])
        end
        return 0
    `

	_, err := redis.NewScript(script).Run(context.WithoutCancel(ctx), e.Redis, []string{leaderKey}, e.InstanceID).Result()
	if err != nil {
		e.Logger.Error("failed to resign leadership", "error", err, "instance", e.InstanceID)
	} else {
		e.Logger.Info("resigned leadership", "instance", e.InstanceID)
		metrics.IsLeader.Set(0)
	}

	e.isLeader = false
}
