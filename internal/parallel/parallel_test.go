package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}

	n := 1000
	seen := make([]int32, n)
	err := For(context.Background(), n, cfg, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
		return nil
	})
	require.NoError(t, err)

	for i, c := range seen {
		assert.Equal(t, int32(1), c, "index %d", i)
	}
}

func TestFor_Sequential(t *testing.T) {
	var calls, total int64
	err := For(context.Background(), 100, Sequential(), func(lo, hi int) error {
		atomic.AddInt64(&calls, 1)
		atomic.AddInt64(&total, int64(hi-lo))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), calls)
	assert.Equal(t, int64(100), total)
}

func TestFor_SmallChunk(t *testing.T) {
	// Small work units fall back to a single chunk.
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 64}

	var calls int64
	err := For(context.Background(), cfg.MinChunkSize-1, cfg, func(lo, hi int) error {
		atomic.AddInt64(&calls, 1)
		assert.Equal(t, 0, lo)
		assert.Equal(t, cfg.MinChunkSize-1, hi)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), calls)
}

func TestFor_Empty(t *testing.T) {
	err := For(context.Background(), 0, DefaultConfig(), func(_, _ int) error {
		t.Fatal("fn must not be called for empty range")
		return nil
	})
	require.NoError(t, err)
}

func TestFor_Error(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 10}
	boom := errors.New("boom")

	err := For(context.Background(), 100, cfg, func(lo, _ int) error {
		if lo == 0 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestFor_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := For(ctx, 10, Sequential(), func(_, _ int) error {
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 1 << 16

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			_ = For(context.Background(), n, cfg, func(lo, hi int) error {
				atomic.AddInt64(&sum, int64(hi-lo))
				return nil
			})
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			_ = For(context.Background(), n, Sequential(), func(lo, hi int) error {
				atomic.AddInt64(&sum, int64(hi-lo))
				return nil
			})
		}
	})
}
