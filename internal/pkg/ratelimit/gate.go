package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Gate 固定间隔的限流闸门，用于约束对上游平台 API 的请求频率。
// 第一次 Wait 立即放行，之后每次放行间隔不小于 interval。
type Gate struct {
	limiter *rate.Limiter
}

func NewGate(interval time.Duration) *Gate {
	if interval <= 0 {
		return &Gate{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Gate{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

func (g *Gate) Wait(ctx context.Context) error {
	return g.limiter.Wait(ctx)
}
