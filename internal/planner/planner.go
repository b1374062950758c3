package planner

import (
	"context"

	"go.uber.org/zap"

	"github.com/gavinpai/trip-planner-ai/internal/ai"
	"github.com/gavinpai/trip-planner-ai/internal/attractions"
	"github.com/gavinpai/trip-planner-ai/internal/weather"
)

// Planner orchestrates validation, enrichment and the completion call.
// Each call is independent and stateless aside from the wired dependencies.
type Planner struct {
	provider    ai.CompletionProvider
	weather     *weather.Service     // nil disables weather enrichment
	attractions *attractions.Service // nil disables attraction enrichment
	log         *zap.Logger
}

// New creates a Planner. weatherSvc and attractionsSvc may be nil; the
// matching enrichment step then becomes a no-op.
func New(provider ai.CompletionProvider, weatherSvc *weather.Service, attractionsSvc *attractions.Service, log *zap.Logger) *Planner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Planner{
		provider:    provider,
		weather:     weatherSvc,
		attractions: attractionsSvc,
		log:         log,
	}
}

// Recommend validates the inputs, builds the prompt and returns the complete
// recommendation text. Validation failures surface before any completion call.
func (p *Planner) Recommend(ctx context.Context, start, end string, prefs *Preferences) (string, error) {
	prompt, err := p.buildRequest(ctx, start, end, prefs)
	if err != nil {
		return "", err
	}
	return p.provider.Complete(ctx, prompt)
}

// RecommendStream is the streaming variant of Recommend. The returned stream
// is single-pass; the caller controls pacing by consuming it.
func (p *Planner) RecommendStream(ctx context.Context, start, end string, prefs *Preferences) (ai.Stream, error) {
	prompt, err := p.buildRequest(ctx, start, end, prefs)
	if err != nil {
		return nil, err
	}
	return p.provider.Stream(ctx, prompt)
}

// buildRequest runs validation and best-effort enrichment, then renders the
// final prompt.
func (p *Planner) buildRequest(ctx context.Context, start, end string, prefs *Preferences) (string, error) {
	r, err := NewDateRange(start, end)
	if err != nil {
		return "", err
	}

	region := ""
	if prefs != nil {
		region = prefs.Region
	}

	var weatherBlock, attractionsBlock string
	if p.weather != nil {
		weatherBlock = p.weather.Enrichment(ctx, r.Start, region)
		if weatherBlock == "" {
			p.log.Debug("no weather data available; continuing without enrichment")
		}
	}
	if p.attractions != nil {
		attractionsBlock = p.attractions.Enrichment(ctx, weather.DestinationsFor(region))
	}

	return BuildPrompt(r, prefs, weatherBlock, attractionsBlock), nil
}
