package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGateFirstWaitImmediate(t *testing.T) {
	gate := NewGate(500 * time.Millisecond)

	start := time.Now()
	require.NoError(t, gate.Wait(context.Background()))
	require.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestGateSpacesWaits(t *testing.T) {
	gate := NewGate(100 * time.Millisecond)

	start := time.Now()
	require.NoError(t, gate.Wait(context.Background()))
	require.NoError(t, gate.Wait(context.Background()))
	require.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestGateZeroIntervalNeverBlocks(t *testing.T) {
	gate := NewGate(0)

	start := time.Now()
	for i := 0; i < 10; i++ {
		require.NoError(t, gate.Wait(context.Background()))
	}
	require.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestGateRespectsCancel(t *testing.T) {
	gate := NewGate(time.Hour)
	require.NoError(t, gate.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, gate.Wait(ctx))
}
