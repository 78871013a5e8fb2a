// Package royaleapi is a thin client for the Clash Royale public API. It
// returns raw JSON bodies and leaves decoding to the normalizer.
package royaleapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/royale-stats/internal/platform/logging"
	"github.com/riskibarqy/royale-stats/internal/platform/resilience"
	"github.com/riskibarqy/royale-stats/internal/usecase"
	"github.com/valyala/fasthttp"
)

const (
	defaultBaseURL     = "https://api.clashroyale.com/v1"
	defaultTimeout     = 10 * time.Second
	maxResponseBodyLen = 8 << 20
)

var errRoyaleTransient = crerr.New("royale api transient failure")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	token          string
	timeout        time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight[[]byte]
}

var _ usecase.RoyaleAPI = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                   "royale-stats",
			MaxConnsPerHost:        64,
			ReadTimeout:            timeout,
			WriteTimeout:           timeout,
			MaxIdleConnDuration:    time.Minute,
			MaxResponseBodySize:    maxResponseBodyLen,
			DisablePathNormalizing: true,
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	breaker := resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("royale api circuit breaker state changed", "from", from, "to", to)
	})

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		logger:         logger,
		breaker:        breaker,
		circuitEnabled: cfg.CircuitBreaker.Enabled,
	}
}

func (c *Client) FetchCards(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/cards")
}

func (c *Client) FetchPlayer(ctx context.Context, tag string) ([]byte, error) {
	return c.get(ctx, "/players/"+url.PathEscape(tag))
}

func (c *Client) FetchBattleLog(ctx context.Context, tag string) ([]byte, error) {
	return c.get(ctx, "/players/"+url.PathEscape(tag)+"/battlelog")
}

func (c *Client) FetchClan(ctx context.Context, tag string) ([]byte, error) {
	return c.get(ctx, "/clans/"+url.PathEscape(tag))
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The shared request is bounded by the client timeout only; each caller
	// still returns when its own context ends.
	raw, err, _ := c.flight.DoContext(ctx, path, func(ctx context.Context) ([]byte, error) {
		if !c.circuitEnabled {
			return c.executeRequest(ctx, path)
		}
		report, err := c.breaker.Acquire()
		if err != nil {
			c.logger.WarnContext(ctx, "royale api circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return nil, fmt.Errorf("%w: royale api is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		raw, err := c.executeRequest(ctx, path)
		report(!isCircuitFailure(err))
		return raw, err
	})
	if err != nil {
		if crerr.Is(err, errRoyaleTransient) && !crerr.Is(err, usecase.ErrUpstream) {
			return nil, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
		}
		return nil, err
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, path string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.URI().DisablePathNormalizing = true
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if c.token != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+c.token)
	}

	start := time.Now()
	if err := c.httpClient.DoDeadline(req, resp, start.Add(c.timeout)); err != nil {
		c.logger.WarnContext(ctx, "royale api request failed", "path", path, "error", err)
		return nil, crerr.Mark(crerr.Wrapf(err, "royale api GET %s", path), errRoyaleTransient)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	c.logger.DebugContext(ctx, "royale api response",
		"path", path,
		"status", status,
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if status >= 200 && status < 300 {
		return body, nil
	}

	upstream := decodeUpstreamError(status, body)
	c.logger.WarnContext(ctx, "royale api returned error status",
		"path", path,
		"status", status,
		"reason", upstream.Reason,
	)
	if status >= fasthttp.StatusInternalServerError {
		return nil, crerr.Mark(upstream, errRoyaleTransient)
	}
	return nil, upstream
}

type errorBody struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func decodeUpstreamError(status int, body []byte) *usecase.UpstreamError {
	out := &usecase.UpstreamError{StatusCode: status}

	var payload errorBody
	if err := sonic.Unmarshal(body, &payload); err == nil {
		out.Reason = strings.TrimSpace(payload.Reason)
		out.Message = strings.TrimSpace(payload.Message)
	}
	return out
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return crerr.Is(err, errRoyaleTransient)
}
