package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.weatherapi.com/v1"

	// forecastWindowDays is the furthest day the forecast endpoint covers;
	// beyond it current conditions serve as a seasonal proxy.
	forecastWindowDays = 14
)

// httpClient is shared across all forecast requests; the 10s timeout guards
// against stalled connections while context cancellation is still honoured
// via NewRequestWithContext.
var httpClient = &http.Client{Timeout: 10 * time.Second}

// Snapshot holds per-destination conditions, fetched fresh on every call.
type Snapshot struct {
	Destination string
	TempC       float64
	TempF       float64
	Condition   string
	Humidity    float64
	RainChance  *float64
}

// Service fetches live forecasts from weatherapi.com.
type Service struct {
	apiKey  string
	baseURL string
	log     *zap.Logger
	now     func() time.Time
}

// NewService returns a Service, or nil when apiKey is empty so callers can
// treat a missing weather credential as "enrichment disabled".
// baseURL overrides the production endpoint and may be empty.
func NewService(apiKey, baseURL string, log *zap.Logger) *Service {
	if strings.TrimSpace(apiKey) == "" {
		return nil
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
		now:     time.Now,
	}
}

// Enrichment fetches conditions for up to five destinations chosen from the
// region table and renders them as a prompt block. Every per-destination
// failure is skipped; if nothing succeeds the result is an empty string and
// the feature degrades to a no-op.
func (s *Service) Enrichment(ctx context.Context, startDate time.Time, region string) string {
	if s == nil {
		return ""
	}

	daysAhead := s.daysUntil(startDate)
	var snaps []Snapshot
	for _, dest := range DestinationsFor(region) {
		snap, err := s.fetch(ctx, dest, daysAhead)
		if err != nil {
			s.log.Debug("weather lookup skipped", zap.String("destination", dest), zap.Error(err))
			continue
		}
		snaps = append(snaps, *snap)
	}

	if len(snaps) == 0 {
		return ""
	}
	return formatBlock(snaps)
}

// daysUntil returns whole days between today and the trip start.
func (s *Service) daysUntil(startDate time.Time) int {
	today := s.now().UTC().Truncate(24 * time.Hour)
	start := startDate.UTC().Truncate(24 * time.Hour)
	return int(start.Sub(today).Hours() / 24)
}

// fetch retrieves one destination's conditions. Trips starting within the
// forecast window use the multi-day forecast and take the last day's averages;
// anything else falls back to current conditions.
func (s *Service) fetch(ctx context.Context, destination string, daysAhead int) (*Snapshot, error) {
	if daysAhead >= 0 && daysAhead <= forecastWindowDays {
		return s.fetchForecast(ctx, destination, daysAhead)
	}
	return s.fetchCurrent(ctx, destination)
}

type forecastResponse struct {
	Forecast struct {
		ForecastDay []struct {
			Day struct {
				AvgTempC    float64 `json:"avgtemp_c"`
				AvgTempF    float64 `json:"avgtemp_f"`
				AvgHumidity float64 `json:"avghumidity"`
				RainChance  float64 `json:"daily_chance_of_rain"`
				Condition   struct {
					Text string `json:"text"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

type currentResponse struct {
	Current struct {
		TempC     float64 `json:"temp_c"`
		TempF     float64 `json:"temp_f"`
		Humidity  float64 `json:"humidity"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

func (s *Service) fetchForecast(ctx context.Context, destination string, daysAhead int) (*Snapshot, error) {
	days := daysAhead
	if days < 1 {
		days = 1
	}

	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("q", destination)
	params.Set("days", fmt.Sprintf("%d", days))
	params.Set("aqi", "no")
	params.Set("alerts", "no")

	var fr forecastResponse
	if err := s.get(ctx, "/forecast.json", params, &fr); err != nil {
		return nil, err
	}

	daysList := fr.Forecast.ForecastDay
	if len(daysList) == 0 {
		return nil, fmt.Errorf("weather: empty forecast for %s", destination)
	}

	day := daysList[len(daysList)-1].Day
	rain := day.RainChance
	return &Snapshot{
		Destination: destination,
		TempC:       day.AvgTempC,
		TempF:       day.AvgTempF,
		Condition:   day.Condition.Text,
		Humidity:    day.AvgHumidity,
		RainChance:  &rain,
	}, nil
}

func (s *Service) fetchCurrent(ctx context.Context, destination string) (*Snapshot, error) {
	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("q", destination)
	params.Set("aqi", "no")

	var cr currentResponse
	if err := s.get(ctx, "/current.json", params, &cr); err != nil {
		return nil, err
	}

	return &Snapshot{
		Destination: destination,
		TempC:       cr.Current.TempC,
		TempF:       cr.Current.TempF,
		Condition:   cr.Current.Condition.Text,
		Humidity:    cr.Current.Humidity,
	}, nil
}

func (s *Service) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("weather: build request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("weather: decode response: %w", err)
	}
	return nil
}

// formatBlock renders successful snapshots into the block prepended to the
// prompt. The heading doubles as the marker downstream consumers look for.
func formatBlock(snaps []Snapshot) string {
	var b strings.Builder
	b.WriteString("REAL WEATHER DATA (live forecast):\n")
	for _, snap := range snaps {
		fmt.Fprintf(&b, "- %s: %s, %.1f°C/%.1f°F, humidity %.0f%%",
			snap.Destination, snap.Condition, snap.TempC, snap.TempF, snap.Humidity)
		if snap.RainChance != nil {
			fmt.Fprintf(&b, ", chance of rain %.0f%%", *snap.RainChance)
		}
		b.WriteString("\n")
	}
	b.WriteString("Weight your recommendations by this real weather data: prefer destinations with favourable conditions for the travel dates.\n")
	return b.String()
}
