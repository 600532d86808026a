package redis

import (
	"context"
	"time"
)

// ListCache 供服务层注入的列表缓存实现，走包内共享客户端
type ListCache struct{}

func NewListCache() ListCache {
	return ListCache{}
}

func (ListCache) GetList(ctx context.Context, key string) ([]string, error) {
	return GetList(ctx, key)
}

func (ListCache) SetListWithExpiration(ctx context.Context, key string, value []string, expiration time.Duration) error {
	return SetListWithExpiration(ctx, key, value, expiration)
}
