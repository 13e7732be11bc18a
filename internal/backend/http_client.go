package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/ngmaloney/ecowatch-terminal/internal/analysis"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// DefaultBaseURL is where the analysis backend listens in development
const DefaultBaseURL = "http://localhost:8000"

// StatusError is returned when the backend answers with a non-2xx status
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend returned status %d", e.Code)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Code, e.Body)
}

// Temporary reports whether retrying the request may succeed
func (e *StatusError) Temporary() bool {
	return e.Code >= 500 || e.Code == http.StatusTooManyRequests
}

// HTTPClient implements Client against the analysis backend's JSON API
type HTTPClient struct {
	baseURL       string
	httpClient    *http.Client
	userAgent     string
	maxRetries    uint64
	retryInterval time.Duration
	breaker       *gobreaker.CircuitBreaker
	logger        *zap.Logger
}

// Options tunes an HTTPClient. Zero values fall back to defaults.
type Options struct {
	BaseURL         string
	Timeout         time.Duration
	Retries         int
	BreakerFailures int
	BreakerOpen     time.Duration
	Logger          *zap.Logger
}

// NewHTTPClient creates a new backend client
func NewHTTPClient(opts Options) *HTTPClient {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.BreakerFailures <= 0 {
		opts.BreakerFailures = 5
	}
	if opts.BreakerOpen <= 0 {
		opts.BreakerOpen = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &HTTPClient{
		baseURL: opts.BaseURL,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		userAgent:     "EcoWatchTerminal/1.0 (github.com/ngmaloney/ecowatch-terminal)",
		maxRetries:    uint64(opts.Retries),
		retryInterval: 500 * time.Millisecond,
		breaker:       newBreaker("analysis-backend", opts.BreakerFailures, opts.BreakerOpen),
		logger:        opts.Logger,
	}
}

func newBreaker(name string, fails int, open time.Duration) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: open,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= uint32(fails)
		},
		// A 4xx means the backend is up and rejected the request.
		IsSuccessful: func(err error) bool {
			var se *StatusError
			if errors.As(err, &se) {
				return !se.Temporary()
			}
			return err == nil
		},
	})
}

// AnalyzeZone POSTs the payload to /analyze-zone
func (c *HTTPClient) AnalyzeZone(ctx context.Context, p analysis.Payload) (Result, error) {
	return c.post(ctx, "/analyze-zone", p)
}

// Analyze POSTs the request to /analyze
func (c *HTTPClient) Analyze(ctx context.Context, req AnalyzeRequest) (Result, error) {
	if len(req.Sensors) == 0 {
		req.Sensors = append([]string(nil), DefaultSensors...)
	}
	return c.post(ctx, "/analyze", req)
}

// CloseIdleConnections releases pooled connections
func (c *HTTPClient) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

func (c *HTTPClient) post(ctx context.Context, path string, body any) (Result, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	requestID := uuid.NewString()
	log := c.logger.With(zap.String("path", path), zap.String("request_id", requestID))

	res, err := c.breaker.Execute(func() (interface{}, error) {
		bo := backoff.NewExponentialBackOff()
		bo.InitialInterval = c.retryInterval
		policy := backoff.WithContext(backoff.WithMaxRetries(bo, c.maxRetries), ctx)

		var result Result
		err := backoff.RetryNotify(func() error {
			r, err := c.do(ctx, path, requestID, data)
			if err != nil {
				var se *StatusError
				if errors.As(err, &se) && !se.Temporary() {
					return backoff.Permanent(err)
				}
				return err
			}
			result = r
			return nil
		}, policy, func(err error, wait time.Duration) {
			log.Warn("backend request failed, retrying", zap.Error(err), zap.Duration("wait", wait))
		})
		return result, err
	})
	if err != nil {
		log.Error("backend request failed", zap.Error(err))
		return nil, err
	}

	log.Debug("backend request succeeded")
	return res.(Result), nil
}

func (c *HTTPClient) do(ctx context.Context, path, requestID string, data []byte) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(msg))}
	}

	result := Result{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result, nil
}
