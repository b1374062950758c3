package weather

// destinationsByRegion maps the recognized region names to representative
// "City,Country" lookup keys for the forecast API.
var destinationsByRegion = map[string][]string{
	"Europe":      {"Paris,France", "Rome,Italy", "Barcelona,Spain", "Amsterdam,Netherlands", "Prague,Czech Republic"},
	"Asia":        {"Tokyo,Japan", "Bangkok,Thailand", "Singapore", "Seoul,South Korea", "Bali,Indonesia"},
	"Americas":    {"New York,USA", "Cancun,Mexico", "Rio de Janeiro,Brazil", "Vancouver,Canada", "Buenos Aires,Argentina"},
	"Africa":      {"Cape Town,South Africa", "Marrakech,Morocco", "Cairo,Egypt", "Nairobi,Kenya", "Zanzibar,Tanzania"},
	"Oceania":     {"Sydney,Australia", "Auckland,New Zealand", "Queenstown,New Zealand", "Melbourne,Australia", "Fiji"},
	"Middle East": {"Dubai,UAE", "Istanbul,Turkey", "Tel Aviv,Israel", "Doha,Qatar", "Muscat,Oman"},
}

// fallbackDestinations spans multiple regions and is used when no region is
// given or the given region is not one of the recognized names.
var fallbackDestinations = []string{
	"Paris,France",
	"Tokyo,Japan",
	"New York,USA",
	"Sydney,Australia",
	"Cape Town,South Africa",
}

// maxDestinations caps how many forecast lookups a single call may issue.
const maxDestinations = 5

// DestinationsFor returns the lookup destinations for a region, falling back
// to the multi-region list for unknown or empty regions. At most five entries.
func DestinationsFor(region string) []string {
	dests, ok := destinationsByRegion[region]
	if !ok {
		dests = fallbackDestinations
	}
	if len(dests) > maxDestinations {
		dests = dests[:maxDestinations]
	}
	out := make([]string, len(dests))
	copy(out, dests)
	return out
}
