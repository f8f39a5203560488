// Package supabase is the PostgREST data provider for the money module.
// Reads go through a bulkhead, the circuit breaker and retry with backoff;
// writes only through the circuit breaker, a failed mutation is never
// replayed automatically.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/boddenberg/money-bfa-go/internal/domain"
	"github.com/boddenberg/money-bfa-go/internal/infra/resilience"
)

var tracer = otel.Tracer("supabase")

const serviceName = "supabase"

// Client wraps HTTP calls to Supabase PostgREST API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	serviceRoleKey string
	cb             *gobreaker.CircuitBreaker
	bulkhead       *resilience.Bulkhead
	cfg            resilience.Config
	logger         *zap.Logger
	loc            *time.Location
}

// Option configures a Client.
type Option func(*Client)

// WithLocation sets the timezone date-only columns are read in. It must be
// the timezone the summaries are computed in, otherwise a stored date
// lands on the previous or next calendar day.
func WithLocation(loc *time.Location) Option {
	return func(c *Client) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// NewClient creates a Supabase client. The service role key is used as
// bearer when set, the anon key otherwise.
func NewClient(httpClient *http.Client, baseURL, apiKey, serviceRoleKey string, cb *gobreaker.CircuitBreaker, cfg resilience.Config, logger *zap.Logger, opts ...Option) *Client {
	if serviceRoleKey == "" {
		serviceRoleKey = apiKey
	}
	c := &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(baseURL, "/"),
		apiKey:         apiKey,
		serviceRoleKey: serviceRoleKey,
		cb:             cb,
		bulkhead:       resilience.NewBulkhead(cfg.MaxConcurrency),
		cfg:            cfg,
		logger:         logger,
		loc:            time.UTC,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Name identifies the backend.
func (c *Client) Name() string { return serviceName }

// Ping checks that PostgREST answers.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.doRequest(ctx, http.MethodGet, "money_settings?select=user_id&limit=1", nil, "")
	return err
}

// StatusError is a non-2xx PostgREST response.
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("supabase %s %s returned %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// doRequest executes an authenticated request to Supabase PostgREST.
// 4xx responses are permanent: retrying cannot fix them.
func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader, prefer string) ([]byte, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		c.logger.Error("supabase: failed to create request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, resilience.Permanent(err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceRoleKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("supabase: request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("supabase: failed to read response body",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("supabase: non-2xx response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(data)),
		)
		statusErr := &StatusError{Method: method, Path: path, Status: resp.StatusCode, Body: string(data)}
		if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, resilience.Permanent(statusErr)
		}
		return nil, statusErr
	}

	c.logger.Debug("supabase: request OK",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)
	return data, nil
}

// fetchRows GETs path and decodes a JSON array of R, with the full read
// resilience stack.
func fetchRows[R any](ctx context.Context, c *Client, op, path string) ([]R, error) {
	ctx, span := tracer.Start(ctx, "Supabase."+op)
	defer span.End()
	span.SetAttributes(attribute.String("db.table", tableOf(path)))

	// Each attempt passes through the breaker so rejected requests
	// (4xx) keep it closed and an open breaker stops the retries.
	var rows []R
	err := c.bulkhead.Do(ctx, func() error {
		return resilience.RetryWithBackoff(ctx, c.cfg, func() error {
			out, err := c.cb.Execute(func() (any, error) {
				return c.doRequest(ctx, http.MethodGet, path, nil, "")
			})
			if err != nil {
				if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
					return resilience.Permanent(err)
				}
				return err
			}
			body, _ := out.([]byte)
			rows = nil
			if len(body) == 0 {
				return nil
			}
			if err := json.Unmarshal(body, &rows); err != nil {
				return resilience.Permanent(fmt.Errorf("decode %s: %w", op, err))
			}
			return nil
		})
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, c.classify(op, err)
	}
	if rows == nil {
		rows = []R{}
	}
	return rows, nil
}

// mutate sends a write through the circuit breaker only.
func (c *Client) mutate(ctx context.Context, op, method, path string, payload any, prefer string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Supabase."+op)
	defer span.End()
	span.SetAttributes(attribute.String("db.table", tableOf(path)))

	var reader io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	out, err := c.cb.Execute(func() (any, error) {
		return c.doRequest(ctx, method, path, reader, prefer)
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, c.classify(op, err)
	}
	body, _ := out.([]byte)
	return body, nil
}

// classify turns transport failures into domain errors.
func (c *Client) classify(op string, err error) error {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return &domain.ErrCircuitOpen{Service: serviceName}
	case errors.Is(err, context.DeadlineExceeded):
		return &domain.ErrTimeout{Operation: "supabase." + op}
	}
	return &domain.ErrExternalService{Service: serviceName + "/" + op, Err: err}
}

func tableOf(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}
