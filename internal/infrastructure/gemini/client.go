package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Liorohan10/Skin-Sage/internal/domain"
	"github.com/Liorohan10/Skin-Sage/internal/logging"
	"github.com/Liorohan10/Skin-Sage/internal/metrics"
	"github.com/google/generative-ai-go/genai"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

// Defaults applied when Config leaves a field zero
const (
	DefaultModel             = "gemini-2.0-flash"
	defaultRequestsPerMinute = 60
	defaultBurst             = 5
	defaultMaxRetries        = 3
	defaultFailureThreshold  = 5
	defaultBreakerTimeout    = time.Minute
)

// Generation parameters
const (
	temperature     = 0.2
	topK            = 32
	topP            = 0.95
	maxOutputTokens = 4096
)

const breakerName = "gemini-api"

// Config holds configuration for the Gemini client
type Config struct {
	APIKey            string
	Model             string
	RequestsPerMinute float64
	Burst             int
	MaxRetries        int
	FailureThreshold  uint32
	BreakerTimeout    time.Duration
}

// generativeModel is the part of *genai.GenerativeModel the client uses
type generativeModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Client handles communication with the Gemini generative AI API.
// It implements domain.AIRecommender.
type Client struct {
	model       generativeModel
	closer      io.Closer
	rateLimiter *rate.Limiter
	breaker     *gobreaker.CircuitBreaker[string]
	maxRetries  int
	backoff     func(attempt int) time.Duration
}

// NewClient creates a Gemini client for the configured model
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API key is required", domain.ErrAIUnavailable)
	}

	gc, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	name := cfg.Model
	if name == "" {
		name = DefaultModel
	}

	model := gc.GenerativeModel(name)
	model.SetTemperature(temperature)
	model.SetTopK(topK)
	model.SetTopP(topP)
	model.SetMaxOutputTokens(maxOutputTokens)
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockMediumAndAbove},
	}

	c := newClient(model, cfg)
	c.closer = gc

	logging.Info().Str("model", name).Msg("Gemini client initialized")
	return c, nil
}

func newClient(model generativeModel, cfg Config) *Client {
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = defaultRequestsPerMinute
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = defaultMaxRetries
	}
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = defaultFailureThreshold
	}
	timeout := cfg.BreakerTimeout
	if timeout <= 0 {
		timeout = defaultBreakerTimeout
	}

	metrics.SetAIBreakerState(stateToInt(gobreaker.StateClosed))

	breaker := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state transition")
			metrics.SetAIBreakerState(stateToInt(to))
		},
		// A caller giving up says nothing about the health of the API
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &Client{
		model:       model,
		rateLimiter: rate.NewLimiter(rate.Limit(rpm/60), burst),
		breaker:     breaker,
		maxRetries:  retries,
		backoff:     exponentialBackoff,
	}
}

// GenerateRecommendations sends the prompt, plus the image when given, and
// returns the model's text reply
func (c *Client) GenerateRecommendations(ctx context.Context, prompt string, image *domain.ImageData) (string, error) {
	parts := []genai.Part{genai.Text(prompt)}
	if image != nil && len(image.Data) > 0 {
		parts = append(parts, genai.Blob{MIMEType: image.MIMEType, Data: image.Data})
	}

	log := logging.Ctx(ctx)

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if err := c.waitForToken(ctx); err != nil {
			return "", err
		}

		start := time.Now()
		text, err := c.breaker.Execute(func() (string, error) {
			return c.generate(ctx, parts)
		})

		switch {
		case err == nil:
			metrics.ObserveAIRequest("success", time.Since(start))
			return text, nil
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			metrics.ObserveAIRequest("rejected", time.Since(start))
			return "", fmt.Errorf("%w: %v", domain.ErrCircuitOpen, err)
		}

		metrics.ObserveAIRequest("error", time.Since(start))
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: %w", domain.ErrAIUnavailable, ctx.Err())
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("Gemini request failed")
		lastErr = err

		if attempt < c.maxRetries {
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %w", domain.ErrAIUnavailable, ctx.Err())
			case <-time.After(c.backoff(attempt)):
			}
		}
	}

	return "", fmt.Errorf("%w: %w", domain.ErrAIUnavailable, lastErr)
}

// waitForToken blocks on the rate limiter. A wait that cannot finish before
// the context deadline is reported as context.DeadlineExceeded.
func (c *Client) waitForToken(ctx context.Context) error {
	err := c.rateLimiter.Wait(ctx)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %w", domain.ErrAIUnavailable, ctxErr)
	}
	if _, ok := ctx.Deadline(); ok {
		return fmt.Errorf("%w: %w: %v", domain.ErrAIUnavailable, context.DeadlineExceeded, err)
	}
	return fmt.Errorf("%w: rate limiter: %v", domain.ErrAIUnavailable, err)
}

// Close releases the underlying API client
func (c *Client) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

func (c *Client) generate(ctx context.Context, parts []genai.Part) (string, error) {
	resp, err := c.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractText(resp)
}

// extractText joins the text parts of the first candidate
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response (finish reason %v)", candidate.FinishReason)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	if b.Len() == 0 {
		return "", errors.New("no text parts in response")
	}
	return b.String(), nil
}

// exponentialBackoff returns 500ms, 1s, 2s, ... for attempts 1, 2, 3, ...
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}

func stateToInt(state gobreaker.State) int {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
