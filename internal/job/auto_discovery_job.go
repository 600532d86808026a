package job

import (
	"context"
	log "log/slog"
	"time"

	"risingcreators/internal/pkg/consts"
	"risingcreators/internal/pkg/logger"
	"risingcreators/internal/pkg/redis"
	"risingcreators/internal/service"

	"github.com/google/uuid"
)

// AutoDiscoveryJob 定时执行所有启用的发现规则
type AutoDiscoveryJob struct {
	discoverySvc service.DiscoveryService
}

func NewAutoDiscoveryJob(discoverySvc service.DiscoveryService) *AutoDiscoveryJob {
	return &AutoDiscoveryJob{
		discoverySvc: discoverySvc,
	}
}

func (s *AutoDiscoveryJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	lock, err := redis.TryLock(ctx, consts.AutoDiscoveryLock, traceID, time.Hour, 1)
	if err != nil || !lock {
		log.WarnContext(ctx, "auto discovery job already running, skipped")
		return
	}
	defer redis.UnLock(ctx, consts.AutoDiscoveryLock, traceID)

	summary, err := s.discoverySvc.RunActiveRules(ctx)
	if err != nil {
		log.ErrorContext(ctx, "auto discovery job failed", "err", err)
		return
	}

	log.InfoContext(ctx, "auto discovery job finished",
		"found", summary.Found, "imported", summary.Imported)
}
