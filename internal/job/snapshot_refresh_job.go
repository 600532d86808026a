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

// SnapshotRefreshJob 定时刷新最久未抓取的一批达人快照
type SnapshotRefreshJob struct {
	discoverySvc service.DiscoveryService
}

func NewSnapshotRefreshJob(discoverySvc service.DiscoveryService) *SnapshotRefreshJob {
	return &SnapshotRefreshJob{
		discoverySvc: discoverySvc,
	}
}

func (s *SnapshotRefreshJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	lock, err := redis.TryLock(ctx, consts.SnapshotRefreshLock, traceID, 30*time.Minute, 1)
	if err != nil || !lock {
		log.WarnContext(ctx, "snapshot refresh job already running, skipped")
		return
	}
	defer redis.UnLock(ctx, consts.SnapshotRefreshLock, traceID)

	updated, err := s.discoverySvc.RefreshSnapshots(ctx)
	if err != nil {
		log.ErrorContext(ctx, "snapshot refresh job failed", "err", err)
		return
	}

	// 记录最近一次成功时间，排查调度停摆时用
	if err = redis.SetWithExpiration(ctx, consts.SnapshotRefreshLastRun, time.Now().Format(time.RFC3339), 24*time.Hour); err != nil {
		log.WarnContext(ctx, "record last run time failed", "err", err)
	}

	log.InfoContext(ctx, "snapshot refresh job finished", "updated", updated)
}
