package royaleapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/royale-stats/internal/platform/resilience"
	"github.com/riskibarqy/royale-stats/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, breaker resilience.CircuitBreakerConfig) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		BaseURL:        server.URL + "/v1",
		Token:          "secret-token",
		Timeout:        2 * time.Second,
		CircuitBreaker: breaker,
	}), server
}

func TestClient_FetchPlayer_SendsEscapedTagAndBearerToken(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var gotPath, gotAuth, gotAccept string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		gotPath = r.URL.EscapedPath()
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`{"tag":"#ABC"}`))
	}, resilience.CircuitBreakerConfig{})

	raw, err := client.FetchPlayer(context.Background(), "#ABC")
	if err != nil {
		t.Fatalf("fetch player: %v", err)
	}
	if string(raw) != `{"tag":"#ABC"}` {
		t.Fatalf("unexpected body %s", raw)
	}

	mu.Lock()
	defer mu.Unlock()
	if gotPath != "/v1/players/%23ABC" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("unexpected authorization header %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Fatalf("unexpected accept header %q", gotAccept)
	}
}

func TestClient_FetchBattleLogAndClanPaths(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var paths []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.EscapedPath())
		mu.Unlock()
		_, _ = w.Write([]byte(`[]`))
	}, resilience.CircuitBreakerConfig{})

	ctx := context.Background()
	if _, err := client.FetchBattleLog(ctx, "#ABC"); err != nil {
		t.Fatalf("fetch battle log: %v", err)
	}
	if _, err := client.FetchClan(ctx, "#CLAN"); err != nil {
		t.Fatalf("fetch clan: %v", err)
	}
	if _, err := client.FetchCards(ctx); err != nil {
		t.Fatalf("fetch cards: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []string{"/v1/players/%23ABC/battlelog", "/v1/clans/%23CLAN", "/v1/cards"}
	if len(paths) != len(want) {
		t.Fatalf("unexpected paths %v", paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("path %d: got=%q want=%q", i, paths[i], want[i])
		}
	}
}

func TestClient_NotFoundBecomesUpstreamError(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"reason":"notFound","message":"player not found"}`))
	}, resilience.CircuitBreakerConfig{})

	_, err := client.FetchPlayer(context.Background(), "#MISSING")
	if !errors.Is(err, usecase.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}

	var upstream *usecase.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected *UpstreamError, got %T", err)
	}
	if upstream.StatusCode != http.StatusNotFound || upstream.Reason != "notFound" || upstream.Message != "player not found" {
		t.Fatalf("unexpected upstream error %+v", upstream)
	}
}

func TestClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"reason":"accessDenied"}`))
	}, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})

	for i := 0; i < 3; i++ {
		if _, err := client.FetchCards(context.Background()); !errors.Is(err, usecase.ErrUpstream) {
			t.Fatalf("call %d: expected ErrUpstream, got %v", i, err)
		}
	}
	if got := hits.Load(); got != 3 {
		t.Fatalf("expected 3 upstream hits, got %d", got)
	}
}

func TestClient_ServerErrorsOpenBreaker(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"reason":"inMaintenance"}`))
	}, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, err := client.FetchCards(ctx)
		var upstream *usecase.UpstreamError
		if !errors.As(err, &upstream) || upstream.StatusCode != http.StatusServiceUnavailable {
			t.Fatalf("call %d: expected upstream 503, got %v", i, err)
		}
	}

	if _, err := client.FetchCards(ctx); !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once open, got %v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Fatalf("expected breaker to short-circuit third call, got %d hits", got)
	}
}

func TestClient_TransportFailureIsDependencyUnavailable(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, resilience.CircuitBreakerConfig{})
	server.Close()

	if _, err := client.FetchCards(context.Background()); !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestClient_CancelledContext(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, resilience.CircuitBreakerConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.FetchCards(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestClient_SharedRequestSurvivesOneCallerCancelling(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	arrived := make(chan struct{})
	release := make(chan struct{})
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			close(arrived)
		}
		<-release
		_, _ = w.Write([]byte(`{"items":[]}`))
	}, resilience.CircuitBreakerConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := client.FetchCards(ctx)
		firstErr <- err
	}()
	<-arrived

	secondBody := make(chan string, 1)
	go func() {
		raw, err := client.FetchCards(context.Background())
		if err != nil {
			t.Errorf("second caller: %v", err)
		}
		secondBody <- string(raw)
	}()
	// let the second caller join the in-flight request
	time.Sleep(50 * time.Millisecond)

	cancel()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled for the cancelled caller, got %v", err)
	}

	close(release)
	if got := <-secondBody; got != `{"items":[]}` {
		t.Fatalf("unexpected body %q", got)
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("expected one upstream request, got %d", got)
	}
}
