package resilience

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight[string]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			got, err, _ := g.Do("/players/%23ABC", func() (string, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if got != "ok" {
				t.Errorf("got %q, want ok", got)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_DoRunsAgainAfterCompletion(t *testing.T) {
	var g SingleFlight[int]
	boom := errors.New("boom")

	if _, err, _ := g.Do("k", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	got, err, shared := g.Do("k", func() (int, error) { return 7, nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 || shared {
		t.Fatalf("got (%d, shared=%t), want (7, false)", got, shared)
	}
}

func TestSingleFlight_DoContextCallerCancellationDoesNotFailOthers(t *testing.T) {
	var g SingleFlight[string]
	release := make(chan struct{})
	started := make(chan struct{})

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err, _ := g.DoContext(leaderCtx, "k", func(ctx context.Context) (string, error) {
			close(started)
			<-release
			if err := ctx.Err(); err != nil {
				return "", err
			}
			return "ok", nil
		})
		leaderErr <- err
	}()
	<-started

	followerResult := make(chan string, 1)
	go func() {
		got, err, shared := g.DoContext(context.Background(), "k", func(context.Context) (string, error) {
			return "second run", nil
		})
		if err != nil || !shared {
			t.Errorf("follower got err=%v shared=%t", err, shared)
		}
		followerResult <- got
	}()

	cancelLeader()
	if err := <-leaderErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("leader expected context.Canceled, got %v", err)
	}

	// let the follower join the running call before it finishes
	time.Sleep(50 * time.Millisecond)
	close(release)
	if got := <-followerResult; got != "ok" {
		t.Fatalf("follower got %q, want the shared result", got)
	}
}

func TestSingleFlight_DoContextDropsCallerDeadline(t *testing.T) {
	var g SingleFlight[bool]
	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()

	hasDeadline, err, _ := g.DoContext(ctx, "k", func(ctx context.Context) (bool, error) {
		_, ok := ctx.Deadline()
		return ok, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hasDeadline {
		t.Fatalf("shared call inherited the caller deadline")
	}
}
