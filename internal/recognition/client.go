package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"face-attendance/internal/shared/apperror"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	embeddingPath = "/get-embedding"
	comparePath   = "/compare-fast-api"

	maxResponseBytes = 4 << 20
)

var (
	ErrNoFaceDetected = apperror.New(
		apperror.CodeInvalidInput,
		"No face detected in image",
		http.StatusBadRequest,
	)

	ErrUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Recognition service unavailable",
		http.StatusServiceUnavailable,
	)

	ErrCompareFailed = apperror.New(
		apperror.CodeInternalError,
		"An error occurred while processing the request",
		http.StatusInternalServerError,
	)
)

//go:generate mockgen -source=client.go -destination=mock/client_mock.go -package=mock

// Client is the contract to the external face-recognition service. The
// backend never interprets embeddings or similarity scores itself.
type Client interface {
	// ExtractEmbedding sends raw image bytes and returns the embedding vector.
	ExtractEmbedding(ctx context.Context, image []byte) ([]float64, error)
	// Compare sends raw image bytes to the comparison endpoint and returns
	// the response body verbatim.
	Compare(ctx context.Context, image []byte) ([]byte, error)
}

// HTTPClient talks to the recognition service over HTTP. Calls are
// single-shot with a bounded timeout; a circuit breaker fails fast when the
// service is misbehaving, it never retries.
type HTTPClient struct {
	client  *http.Client
	baseURL string
	cb      *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	settings := gobreaker.Settings{
		Name:        "recognition-api",
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.5
		},
	}

	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		cb:      gobreaker.NewCircuitBreaker(settings),
		logger:  zap.L().Named("recognition.client"),
	}
}

type postResult struct {
	status int
	body   []byte
}

// post performs one octet-stream POST through the breaker. Transport errors
// count as breaker failures; HTTP-level errors are returned to the caller to
// classify.
func (c *HTTPClient) post(ctx context.Context, path string, image []byte) (postResult, error) {
	res, err := c.cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(image))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/octet-stream")

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("call recognition service: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return nil, fmt.Errorf("read recognition response: %w", err)
		}

		return postResult{status: resp.StatusCode, body: body}, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			c.logger.Warn("circuit breaker open, skipping recognition call", zap.String("path", path))
		}
		return postResult{}, apperror.Wrap(err, apperror.CodeServiceUnavailable, ErrUnavailable.Message, http.StatusServiceUnavailable)
	}

	return res.(postResult), nil
}

func (c *HTTPClient) ExtractEmbedding(ctx context.Context, image []byte) ([]float64, error) {
	res, err := c.post(ctx, embeddingPath, image)
	if err != nil {
		return nil, err
	}

	switch {
	case res.status >= 500:
		return nil, ErrUnavailable
	case res.status >= 400:
		// The service reports "no detectable face" as a client error.
		return nil, ErrNoFaceDetected
	}

	var parsed struct {
		Embedding []float64 `json:"embedding"`
	}
	if err := json.Unmarshal(res.body, &parsed); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeServiceUnavailable, ErrUnavailable.Message, http.StatusServiceUnavailable)
	}
	if len(parsed.Embedding) == 0 {
		return nil, ErrNoFaceDetected
	}

	return parsed.Embedding, nil
}

func (c *HTTPClient) Compare(ctx context.Context, image []byte) ([]byte, error) {
	res, err := c.post(ctx, comparePath, image)
	if err != nil {
		return nil, err
	}

	if res.status >= 500 {
		return nil, ErrUnavailable
	}
	if res.status >= 400 {
		return nil, ErrCompareFailed
	}

	return res.body, nil
}
