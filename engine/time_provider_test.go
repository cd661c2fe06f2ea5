package engine

import (
	"sync"
	"testing"
	"time"
)

func TestTimeProviderIsMonotonic(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, mock.Now())
	}

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	if want := start.Add(45 * time.Minute); !mock.Now().Equal(want) {
		t.Errorf("Expected %v after advances, got %v", want, mock.Now())
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				mock.Advance(time.Millisecond)
				_ = mock.Now()
			}
		}()
	}
	wg.Wait()

	if got := mock.Now().Sub(time.Unix(0, 0)); got != 800*time.Millisecond {
		t.Errorf("Expected 800ms total, got %v", got)
	}
}

// TestSchedulerFollowsMockClock drives the scheduler from the context clock the way the game loop does
func TestSchedulerFollowsMockClock(t *testing.T) {
	ctx := newTestContext(t, PageHooks{})
	mock := NewMockTimeProvider(time.Unix(100, 0))
	ctx.Clock = mock

	cs := NewClockScheduler(ctx)
	cs.Start(ctx.Clock.Now())

	mock.Advance(ctx.Settings.TickInterval*3 + ctx.Settings.TickInterval/2)
	if n := cs.Advance(ctx.Clock.Now()); n != 3 {
		t.Fatalf("Expected 3 ticks, got %d", n)
	}

	// the half tick left over is carried into the next step
	mock.Advance(ctx.Settings.TickInterval / 2)
	if n := cs.Advance(ctx.Clock.Now()); n != 1 {
		t.Errorf("Expected 1 tick, got %d", n)
	}
	if cs.TickCount() != 4 {
		t.Errorf("Expected 4 ticks total, got %d", cs.TickCount())
	}
}
