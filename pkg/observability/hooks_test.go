package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnLoadStart(ctx, "unitigs.fa")
	p.OnLoadComplete(ctx, "unitigs.fa", 100, time.Second, nil)
	p.OnVerifyStart(ctx, 240)
	p.OnVerifyComplete(ctx, 240, 0, time.Second, nil)
	p.OnCoverStart(ctx, "first", 100)
	p.OnCoverComplete(ctx, "first", 12, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "report")
	c.OnCacheMiss(ctx, "cover")
	c.OnCacheSet(ctx, "artifact", 1024)
}

type countingHooks struct {
	NoopPipelineHooks
	mu    sync.Mutex
	loads int
}

func (h *countingHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loads++
}

type recordingCacheHooks struct {
	NoopCacheHooks
	hits []string
}

func (h *recordingCacheHooks) OnCacheHit(_ context.Context, key string) {
	h.hits = append(h.hits, key)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	ph := &countingHooks{}
	SetPipelineHooks(ph)
	Pipeline().OnLoadComplete(context.Background(), "x", 1, 0, nil)
	if ph.loads != 1 {
		t.Errorf("loads = %d, want 1", ph.loads)
	}

	ch := &recordingCacheHooks{}
	SetCacheHooks(ch)
	Cache().OnCacheHit(context.Background(), "report")
	if len(ch.hits) != 1 || ch.hits[0] != "report" {
		t.Errorf("hits = %v", ch.hits)
	}

	// nil is ignored
	SetPipelineHooks(nil)
	SetCacheHooks(nil)
	if Pipeline() != PipelineHooks(ph) || Cache() != CacheHooks(ch) {
		t.Error("nil hooks replaced registered hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestConcurrentAccess(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	ph := &countingHooks{}
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i == 0 {
				SetPipelineHooks(ph)
			}
			Pipeline().OnLoadStart(context.Background(), "x")
			_ = Cache()
		}(i)
	}
	wg.Wait()
}
