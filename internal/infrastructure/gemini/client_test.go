package gemini

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Liorohan10/Skin-Sage/internal/domain"
	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type fakeReply struct {
	resp *genai.GenerateContentResponse
	err  error
}

// fakeModel replays canned replies in order, repeating the last one
type fakeModel struct {
	mu      sync.Mutex
	replies []fakeReply
	calls   int
	parts   [][]genai.Part
}

func (m *fakeModel) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.parts = append(m.parts, parts)
	i := m.calls
	if i >= len(m.replies) {
		i = len(m.replies) - 1
	}
	m.calls++

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.replies[i].resp, m.replies[i].err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, genai.Text(p))
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content}},
	}
}

func newTestClient(model generativeModel, cfg Config) *Client {
	if cfg.RequestsPerMinute == 0 {
		cfg.RequestsPerMinute = 60000
	}
	if cfg.Burst == 0 {
		cfg.Burst = 100
	}
	c := newClient(model, cfg)
	c.backoff = func(int) time.Duration { return 0 }
	return c
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	client, err := NewClient(context.Background(), Config{})

	assert.Nil(t, client)
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
}

func TestNewClient_Defaults(t *testing.T) {
	c := newClient(&fakeModel{}, Config{})

	assert.Equal(t, defaultMaxRetries, c.maxRetries)
	assert.Equal(t, defaultBurst, c.rateLimiter.Burst())
	assert.InDelta(t, 1.0, float64(c.rateLimiter.Limit()), 0.0001)
	assert.Equal(t, "closed", c.breaker.State().String())
	assert.NoError(t, c.Close())
}

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, 1000 * time.Millisecond},
		{3, 2000 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, exponentialBackoff(tt.attempt))
		})
	}
}

func TestGenerateRecommendations_Success(t *testing.T) {
	model := &fakeModel{replies: []fakeReply{{resp: textResponse(`{"skinConditionAnalysis":`, `"ok"}`)}}}
	client := newTestClient(model, Config{})

	text, err := client.GenerateRecommendations(context.Background(), "prompt", nil)

	require.NoError(t, err)
	assert.Equal(t, `{"skinConditionAnalysis":"ok"}`, text)
	require.Len(t, model.parts, 1)
	assert.Equal(t, []genai.Part{genai.Text("prompt")}, model.parts[0])
}

func TestGenerateRecommendations_WithImage(t *testing.T) {
	model := &fakeModel{replies: []fakeReply{{resp: textResponse("reply")}}}
	client := newTestClient(model, Config{})

	image := &domain.ImageData{MIMEType: "image/png", Data: []byte{0x89, 0x50}}
	_, err := client.GenerateRecommendations(context.Background(), "prompt", image)

	require.NoError(t, err)
	require.Len(t, model.parts[0], 2)
	assert.Equal(t, genai.Blob{MIMEType: "image/png", Data: []byte{0x89, 0x50}}, model.parts[0][1])
}

func TestGenerateRecommendations_EmptyImageIgnored(t *testing.T) {
	model := &fakeModel{replies: []fakeReply{{resp: textResponse("reply")}}}
	client := newTestClient(model, Config{})

	_, err := client.GenerateRecommendations(context.Background(), "prompt", &domain.ImageData{MIMEType: "image/png"})

	require.NoError(t, err)
	assert.Len(t, model.parts[0], 1)
}

func TestGenerateRecommendations_RetriesTransientFailure(t *testing.T) {
	model := &fakeModel{replies: []fakeReply{
		{err: errors.New("503 service unavailable")},
		{resp: textResponse("reply")},
	}}
	client := newTestClient(model, Config{})

	text, err := client.GenerateRecommendations(context.Background(), "prompt", nil)

	require.NoError(t, err)
	assert.Equal(t, "reply", text)
	assert.Equal(t, 2, model.calls)
}

func TestGenerateRecommendations_AllRetriesFail(t *testing.T) {
	model := &fakeModel{replies: []fakeReply{{err: errors.New("503 service unavailable")}}}
	client := newTestClient(model, Config{MaxRetries: 3, FailureThreshold: 10})

	_, err := client.GenerateRecommendations(context.Background(), "prompt", nil)

	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
	assert.Contains(t, err.Error(), "503")
	assert.Equal(t, 3, model.calls)
}

func TestGenerateRecommendations_EmptyResponses(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{name: "no candidates", resp: &genai.GenerateContentResponse{}},
		{name: "no content", resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{name: "no text parts", resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}},
		}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &fakeModel{replies: []fakeReply{{resp: tt.resp}}}
			client := newTestClient(model, Config{MaxRetries: 1})

			_, err := client.GenerateRecommendations(context.Background(), "prompt", nil)
			assert.ErrorIs(t, err, domain.ErrAIUnavailable)
		})
	}
}

func TestGenerateRecommendations_CircuitOpens(t *testing.T) {
	model := &fakeModel{replies: []fakeReply{{err: errors.New("500 internal")}}}
	client := newTestClient(model, Config{MaxRetries: 1, FailureThreshold: 2, BreakerTimeout: time.Hour})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := client.GenerateRecommendations(ctx, "prompt", nil)
		require.ErrorIs(t, err, domain.ErrAIUnavailable)
	}

	_, err := client.GenerateRecommendations(ctx, "prompt", nil)

	assert.ErrorIs(t, err, domain.ErrCircuitOpen)
	assert.Equal(t, 2, model.calls, "open breaker must not reach the model")
}

func TestGenerateRecommendations_ContextCanceled(t *testing.T) {
	model := &fakeModel{replies: []fakeReply{{resp: textResponse("reply")}}}
	client := newTestClient(model, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GenerateRecommendations(ctx, "prompt", nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateRecommendations_DeadlineExceeded(t *testing.T) {
	model := &fakeModel{replies: []fakeReply{{err: context.DeadlineExceeded}}}
	client := newTestClient(model, Config{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	<-ctx.Done()

	_, err := client.GenerateRecommendations(ctx, "prompt", nil)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGenerateRecommendations_LimiterWaitPastDeadline(t *testing.T) {
	model := &fakeModel{replies: []fakeReply{{resp: textResponse("reply")}}}
	client := newTestClient(model, Config{})
	client.rateLimiter = rate.NewLimiter(rate.Every(time.Hour), 1)
	require.True(t, client.rateLimiter.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := client.GenerateRecommendations(ctx, "prompt", nil)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
	assert.Equal(t, 0, model.calls)
}

func TestGenerateRecommendations_LimiterWaitCanceled(t *testing.T) {
	model := &fakeModel{replies: []fakeReply{{resp: textResponse("reply")}}}
	client := newTestClient(model, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GenerateRecommendations(ctx, "prompt", nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
}
