package observability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type testRenderHooks struct{ NoopRenderHooks }

func TestRegistryDefaults(t *testing.T) {
	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Errorf("Render() = %T, want NoopRenderHooks", Render())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T, want NoopHTTPHooks", HTTP())
	}
}

func TestSetHooks(t *testing.T) {
	defer Reset()

	custom := &testRenderHooks{}
	SetRenderHooks(custom)
	SetRenderHooks(nil)
	if Render() != custom {
		t.Error("SetRenderHooks(nil) should keep the registered hooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("setting render hooks should not touch cache hooks")
	}

	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}

func TestInstall(t *testing.T) {
	defer Reset()

	if Install(struct{}{}) {
		t.Error("Install should report false for a value with no hooks")
	}

	c := NewCounters()
	if !Install(c) {
		t.Fatal("Install(Counters) = false")
	}
	if Render() != RenderHooks(c) || Cache() != CacheHooks(c) || HTTP() != HTTPHooks(c) {
		t.Error("Counters should be installed for every hook interface")
	}
}

func TestCounters(t *testing.T) {
	ctx := context.Background()
	c := NewCounters()

	if s := c.Snapshot(); s != (CounterSnapshot{}) {
		t.Errorf("fresh snapshot = %+v", s)
	}

	c.OnEncodeComplete(ctx, []string{"svg"}, 2*time.Millisecond, nil)
	c.OnEncodeComplete(ctx, []string{"png"}, 4*time.Millisecond, nil)
	c.OnEncodeComplete(ctx, []string{"png"}, time.Second, errors.New("encode"))
	c.OnCacheHit(ctx, "frame")
	c.OnCacheHit(ctx, "frame")
	c.OnCacheHit(ctx, "frame")
	c.OnCacheMiss(ctx, "frame")
	c.OnCacheSet(ctx, "frame", 512)
	c.OnRequest(ctx, "GET", "/scene.svg")
	c.OnError(ctx, "GET", "/scene.png", errors.New("boom"))

	want := CounterSnapshot{
		FramesRendered: 2,
		RenderErrors:   1,
		AvgRenderMs:    3,
		CacheHits:      3,
		CacheMisses:    1,
		CacheHitRatio:  0.75,
		BytesCached:    512,
		Requests:       1,
		ServerErrors:   1,
	}
	if got := c.Snapshot(); got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
}

func TestCountersConcurrent(t *testing.T) {
	c := NewCounters()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				c.OnRequest(context.Background(), "GET", "/status")
			}
		}()
	}
	wg.Wait()
	if got := c.Snapshot().Requests; got != 800 {
		t.Errorf("Requests = %d, want 800", got)
	}
}
