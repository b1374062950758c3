package planner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavinpai/trip-planner-ai/internal/ai"
	"github.com/gavinpai/trip-planner-ai/internal/weather"
)

type fakeProvider struct {
	calls      int
	lastPrompt string
	response   string
	err        error
	chunks     []string
}

func (f *fakeProvider) Complete(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", fmt.Errorf("completion request failed: %w", f.err)
	}
	return f.response, nil
}

func (f *fakeProvider) Stream(_ context.Context, prompt string) (ai.Stream, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return nil, fmt.Errorf("completion request failed: %w", f.err)
	}
	return &fakeStream{chunks: f.chunks}, nil
}

type fakeStream struct {
	chunks []string
	pos    int
}

func (s *fakeStream) Next() (string, error) {
	if s.pos >= len(s.chunks) {
		return "", io.EOF
	}
	chunk := s.chunks[s.pos]
	s.pos++
	return chunk, nil
}

func TestRecommendHappyPath(t *testing.T) {
	provider := &fakeProvider{response: "Visit Paris, Rome, and Barcelona!"}
	p := New(provider, nil, nil, nil)

	got, err := p.Recommend(context.Background(), "2025-07-15", "2025-07-25", nil)
	require.NoError(t, err)
	assert.Equal(t, "Visit Paris, Rome, and Barcelona!", got)
	assert.Contains(t, provider.lastPrompt, "10 days")
	assert.Contains(t, provider.lastPrompt, "July")
	assert.NotContains(t, provider.lastPrompt, "REAL WEATHER DATA")
}

func TestRecommendEndBeforeStartNeverCallsProvider(t *testing.T) {
	provider := &fakeProvider{response: "unused"}
	p := New(provider, nil, nil, nil)

	_, err := p.Recommend(context.Background(), "2025-07-25", "2025-07-15", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end date must be on or after start date")
	assert.Zero(t, provider.calls, "provider must not be called on validation failure")
}

func TestRecommendInvalidDatesNeverCallProvider(t *testing.T) {
	provider := &fakeProvider{}
	p := New(provider, nil, nil, nil)

	_, err := p.Recommend(context.Background(), "not-a-date", "2025-07-25", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start date format")
	assert.Zero(t, provider.calls)

	_, err = p.Recommend(context.Background(), "2025-07-15", "2025/07/25", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid end date format")
	assert.Zero(t, provider.calls)
}

func TestRecommendTransportFailureCarriesCause(t *testing.T) {
	provider := &fakeProvider{err: errors.New("API Error: upstream unavailable")}
	p := New(provider, nil, nil, nil)

	_, err := p.Recommend(context.Background(), "2025-07-15", "2025-07-25", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completion request failed")
	assert.Contains(t, err.Error(), "API Error: upstream unavailable")
}

func TestRecommendStream(t *testing.T) {
	provider := &fakeProvider{chunks: []string{"Visit ", "Paris", " in July."}}
	p := New(provider, nil, nil, nil)

	stream, err := p.RecommendStream(context.Background(), "2025-07-15", "2025-07-25", nil)
	require.NoError(t, err)

	var b strings.Builder
	for {
		chunk, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		b.WriteString(chunk)
	}
	assert.Equal(t, "Visit Paris in July.", b.String())
}

func TestRecommendWithWeatherEnrichment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/forecast.json", r.URL.Path)
		fmt.Fprint(w, `{"forecast":{"forecastday":[{"day":{"avgtemp_c":22.0,"avgtemp_f":71.6,"avghumidity":55,"daily_chance_of_rain":10,"condition":{"text":"Sunny"}}}]}}`)
	}))
	defer srv.Close()

	provider := &fakeProvider{response: "Go to Paris."}
	weatherSvc := weather.NewService("test-weather-key", srv.URL, nil)
	p := New(provider, weatherSvc, nil, nil)

	// A start date a few days out keeps the lookup on the forecast path.
	start := time.Now().UTC().AddDate(0, 0, 3)
	end := start.AddDate(0, 0, 5)

	_, err := p.Recommend(context.Background(), start.Format("2006-01-02"), end.Format("2006-01-02"),
		&Preferences{Region: "Europe"})
	require.NoError(t, err)
	assert.Contains(t, provider.lastPrompt, "REAL WEATHER DATA")
	assert.Contains(t, provider.lastPrompt, "Sunny")
}

func TestRecommendWithoutWeatherKeyHasNoWeatherBlock(t *testing.T) {
	provider := &fakeProvider{response: "ok"}

	// An empty key disables the service entirely.
	weatherSvc := weather.NewService("", "", nil)
	require.Nil(t, weatherSvc)

	p := New(provider, weatherSvc, nil, nil)
	_, err := p.Recommend(context.Background(), "2025-07-15", "2025-07-25", nil)
	require.NoError(t, err)
	assert.NotContains(t, provider.lastPrompt, "REAL WEATHER DATA")
}
