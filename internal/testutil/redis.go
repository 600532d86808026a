package testutil

import (
	"context"
	"time"
)

// MockListCache 按需覆盖各方法的列表缓存假实现，未设置的方法表现为空缓存
type MockListCache struct {
	GetListFunc               func(ctx context.Context, key string) ([]string, error)
	SetListWithExpirationFunc func(ctx context.Context, key string, value []string, expiration time.Duration) error
}

func (m *MockListCache) GetList(ctx context.Context, key string) ([]string, error) {
	if m.GetListFunc != nil {
		return m.GetListFunc(ctx, key)
	}

	return nil, nil
}

func (m *MockListCache) SetListWithExpiration(ctx context.Context, key string, value []string, expiration time.Duration) error {
	if m.SetListWithExpirationFunc != nil {
		return m.SetListWithExpirationFunc(ctx, key, value, expiration)
	}

	return nil
}
