package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	r, err := NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestBuildPromptBasic(t *testing.T) {
	prompt := BuildPrompt(mustRange(t, "2025-07-15", "2025-07-25"), nil, "", "")

	assert.Contains(t, prompt, "2025-07-15")
	assert.Contains(t, prompt, "2025-07-25")
	assert.Contains(t, prompt, "10 days")
	assert.Contains(t, prompt, "July")
	assert.NotContains(t, prompt, "Additional preferences")
	assert.NotContains(t, prompt, "REAL WEATHER DATA")
}

func TestBuildPromptWithAllPreferences(t *testing.T) {
	prefs := &Preferences{
		Budget:    "high",
		Interests: []string{"adventure", "wildlife"},
		Region:    "Africa",
		Climate:   "hot",
	}
	prompt := BuildPrompt(mustRange(t, "2025-07-15", "2025-07-25"), prefs, "", "")

	assert.Contains(t, prompt, "Budget: high")
	assert.Contains(t, prompt, "adventure, wildlife")
	assert.Contains(t, prompt, "Preferred region: Africa")
	assert.Contains(t, prompt, "Preferred climate: hot")
}

func TestBuildPromptFieldOrder(t *testing.T) {
	prefs := &Preferences{
		Budget:    "low",
		Interests: []string{"beaches"},
		Region:    "Asia",
		Climate:   "warm",
	}
	prompt := BuildPrompt(mustRange(t, "2025-06-01", "2025-06-10"), prefs, "", "")

	budgetIdx := strings.Index(prompt, "Budget:")
	interestsIdx := strings.Index(prompt, "Interests:")
	regionIdx := strings.Index(prompt, "Preferred region:")
	climateIdx := strings.Index(prompt, "Preferred climate:")
	require.True(t, budgetIdx >= 0 && interestsIdx >= 0 && regionIdx >= 0 && climateIdx >= 0)
	assert.True(t, budgetIdx < interestsIdx && interestsIdx < regionIdx && regionIdx < climateIdx,
		"preference lines must keep budget, interests, region, climate order")
}

func TestBuildPromptPartialPreferences(t *testing.T) {
	prompt := BuildPrompt(mustRange(t, "2025-07-15", "2025-07-25"), &Preferences{Budget: "medium"}, "", "")

	assert.Contains(t, prompt, "Budget: medium")
	assert.NotContains(t, prompt, "Interests:")
	assert.NotContains(t, prompt, "Preferred region:")
	assert.NotContains(t, prompt, "Preferred climate:")
}

func TestBuildPromptMonths(t *testing.T) {
	prompt := BuildPrompt(mustRange(t, "2025-01-15", "2025-01-20"), nil, "", "")
	assert.Contains(t, prompt, "January")

	prompt = BuildPrompt(mustRange(t, "2025-12-15", "2025-12-20"), nil, "", "")
	assert.Contains(t, prompt, "December")
}

func TestBuildPromptZeroDayTrip(t *testing.T) {
	prompt := BuildPrompt(mustRange(t, "2025-07-15", "2025-07-15"), nil, "", "")
	assert.Contains(t, prompt, "0 days")
}

func TestBuildPromptWeatherBlockPrepended(t *testing.T) {
	block := "REAL WEATHER DATA (live forecast):\n- Paris,France: Sunny, 22.0°C/71.6°F, humidity 55%\n"
	prompt := BuildPrompt(mustRange(t, "2025-07-15", "2025-07-25"), nil, block, "")

	require.Contains(t, prompt, "REAL WEATHER DATA")
	assert.True(t, strings.Index(prompt, "REAL WEATHER DATA") < strings.Index(prompt, "I'm planning a trip"),
		"weather block must precede the trip request")
}

func TestBuildPromptAttractionsBlock(t *testing.T) {
	block := "SIGHTSEEING HIGHLIGHTS (from Google Places):\n- Paris,France: Louvre (4.7)\n"
	prompt := BuildPrompt(mustRange(t, "2025-07-15", "2025-07-25"), nil, "", block)
	assert.Contains(t, prompt, "SIGHTSEEING HIGHLIGHTS")
}
