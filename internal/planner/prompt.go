package planner

import (
	"fmt"
	"strings"
)

// BuildPrompt deterministically renders the validated trip inputs into a
// single natural-language instruction string. Preference lines keep a fixed
// order (budget, interests, region, climate) and absent values are omitted.
// weatherData and attractionsData are pre-formatted enrichment blocks; either
// may be empty, in which case it leaves no trace in the output.
func BuildPrompt(r DateRange, prefs *Preferences, weatherData, attractionsData string) string {
	var b strings.Builder

	if weatherData != "" {
		b.WriteString(weatherData)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "I'm planning a trip from %s to %s (%d days).\n\n",
		r.Start.Format(dateLayout), r.End.Format(dateLayout), r.Days())

	b.WriteString("Please recommend the best places to visit during this time period. Consider:\n")

	// The start month gives the model seasonal context.
	fmt.Fprintf(&b, "- The travel dates are in %s, so recommend destinations with good weather and seasonal activities during this time\n",
		r.Start.Month().String())
	fmt.Fprintf(&b, "- The trip duration is %d days\n", r.Days())

	if prefs != nil && !prefs.empty() {
		b.WriteString("\nAdditional preferences:\n")

		if prefs.Budget != "" {
			fmt.Fprintf(&b, "- Budget: %s\n", prefs.Budget)
		}
		if len(prefs.Interests) > 0 {
			fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(prefs.Interests, ", "))
		}
		if prefs.Region != "" {
			fmt.Fprintf(&b, "- Preferred region: %s\n", prefs.Region)
		}
		if prefs.Climate != "" {
			fmt.Fprintf(&b, "- Preferred climate: %s\n", prefs.Climate)
		}
	}

	if attractionsData != "" {
		b.WriteString("\n")
		b.WriteString(attractionsData)
	}

	b.WriteString(`
Please provide:
1. Top 3-5 destination recommendations with brief explanations
2. Why each destination is ideal for the specified dates
3. Key attractions and activities for each destination
4. Any important travel considerations (weather, crowds, events, etc.)

Format the response in a clear, organized way.`)

	return b.String()
}
