package impl_rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	defaultTimeout                 = 30 * time.Second
	defaultResponseBodyLimit int64 = 10 << 20 // 10 MiB
)

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// BreakerConfig controls when a backend is considered down. Only transport
// failures count; any HTTP status the backend answers with is a success.
type BreakerConfig struct {
	MaxRequests         uint32
	Interval            time.Duration
	OpenTimeout         time.Duration
	ConsecutiveFailures uint32
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:         1,
		Interval:            time.Minute,
		OpenTimeout:         30 * time.Second,
		ConsecutiveFailures: 5,
	}
}

type Options struct {
	Name    string
	BaseURL string
	Timeout time.Duration
	Headers map[string]string
	Breaker BreakerConfig
	Doer    HTTPDoer
	Logger  *zap.Logger
}

type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    any
}

type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client sends JSON requests to one backend through a circuit breaker.
type Client struct {
	name    string
	baseURL *url.URL
	doer    HTTPDoer
	headers map[string]string
	timeout time.Duration
	maxBody int64
	breaker *gobreaker.CircuitBreaker
	log     *zap.Logger
}

func New(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimSpace(opts.BaseURL))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			fmt.Sprintf("rest: invalid base url %q", opts.BaseURL),
			http.StatusBadRequest,
			map[string]any{"client": opts.Name},
		)
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named(opts.Name)

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	doer := opts.Doer
	if doer == nil {
		doer = &http.Client{Timeout: timeout}
	}

	cfg := opts.Breaker
	if cfg.ConsecutiveFailures == 0 {
		cfg = DefaultBreakerConfig()
	}

	headers := make(map[string]string, len(opts.Headers))
	for k, v := range opts.Headers {
		headers[k] = v
	}

	c := &Client{
		name:    opts.Name,
		baseURL: base,
		doer:    doer,
		headers: headers,
		timeout: timeout,
		maxBody: defaultResponseBodyLimit,
		log:     log,
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        opts.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		// A caller giving up says nothing about the backend.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return c, nil
}

// Do sends req and returns whatever status the backend answered with. The
// error is reserved for requests that never got an answer.
func (c *Client) Do(ctx context.Context, req Request) (Response, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}

	target := c.resolve(req.Path, req.Query)

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return Response{}, transportWrapError(
				err,
				goerrors.CategoryBadInput,
				"rest: encode request body",
				http.StatusBadRequest,
				map[string]any{"client": c.name, "method": method, "url": target},
			)
		}
		body = bytes.NewReader(payload)
	}

	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.send(ctx, method, target, body, req.Headers)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.Warn("request rejected by circuit breaker", zap.String("method", method), zap.String("url", target))
			return Response{}, unavailableError(
				err,
				fmt.Sprintf("rest: %s is unavailable", c.name),
				map[string]any{"client": c.name, "breaker": c.breaker.State().String()},
			)
		}
		return Response{}, err
	}

	return out.(Response), nil
}

func (c *Client) send(ctx context.Context, method, target string, body io.Reader, extra map[string]string) (Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return Response{}, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"rest: create http request",
			http.StatusBadRequest,
			map[string]any{"client": c.name, "method": method, "url": target},
		)
	}

	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for key, value := range c.headers {
		httpReq.Header.Set(key, value)
	}
	for key, value := range extra {
		httpReq.Header.Set(key, value)
	}

	startedAt := time.Now()
	httpRes, err := c.doer.Do(httpReq)
	if err != nil {
		return Response{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"rest: execute http request",
			http.StatusBadGateway,
			map[string]any{"client": c.name, "method": method, "url": target},
		)
	}
	defer httpRes.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(httpRes.Body, c.maxBody+1))
	if err != nil {
		return Response{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"rest: read response body",
			http.StatusBadGateway,
			map[string]any{"client": c.name, "status_code": httpRes.StatusCode},
		)
	}
	if int64(len(payload)) > c.maxBody {
		return Response{}, transportError(
			fmt.Sprintf("rest: response body exceeds limit of %d bytes", c.maxBody),
			goerrors.CategoryExternal,
			http.StatusBadGateway,
			map[string]any{"client": c.name, "status_code": httpRes.StatusCode},
		)
	}

	c.log.Debug("http request completed",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", httpRes.StatusCode),
		zap.Duration("duration", time.Since(startedAt)),
	)

	return Response{
		StatusCode: httpRes.StatusCode,
		Headers:    httpRes.Header,
		Body:       payload,
	}, nil
}

func (c *Client) resolve(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawQuery = query.Encode()
	return u.String()
}

// Healthy reports whether the breaker currently lets requests through.
func (c *Client) Healthy() bool {
	return c.breaker.State() != gobreaker.StateOpen
}

// DecodeJSON unmarshals a response body, wrapping failures as external
// errors.
func DecodeJSON(res Response, v any) error {
	if err := json.Unmarshal(res.Body, v); err != nil {
		return transportWrapError(
			err,
			goerrors.CategoryExternal,
			"rest: decode response body",
			http.StatusBadGateway,
			map[string]any{"status_code": res.StatusCode},
		)
	}
	return nil
}
