// README: Interactive CLI; prompts for dates and preferences, streams the recommendation to stdout.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/gavinpai/trip-planner-ai/internal/ai"
	"github.com/gavinpai/trip-planner-ai/internal/attractions"
	"github.com/gavinpai/trip-planner-ai/internal/config"
	"github.com/gavinpai/trip-planner-ai/internal/planner"
	"github.com/gavinpai/trip-planner-ai/internal/weather"
)

func main() {
	apiKeyFlag := flag.String("api-key", "", "completion API key (defaults to GEMINI_API_KEY)")
	flag.Parse()

	// Best effort; absence of a .env file is fine.
	_ = godotenv.Load()

	if err := run(*apiKeyFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(apiKeyOverride string) error {
	cfg, err := loadConfig(apiKeyOverride)
	if err != nil {
		return err
	}

	ctx := context.Background()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model, cfg.AI.MaxTokens)
	if err != nil {
		return err
	}
	defer provider.Close()

	weatherSvc := weather.NewService(cfg.Weather.APIKey, cfg.Weather.BaseURL, nil)
	attractionsSvc, err := attractions.NewService(cfg.Maps.APIKey, nil)
	if err != nil {
		return err
	}

	p := planner.New(provider, weatherSvc, attractionsSvc, nil)

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Trip Planner AI")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	in := bufio.NewReader(os.Stdin)

	fmt.Println("Enter your travel dates:")
	startDate := prompt(in, "Start date (YYYY-MM-DD): ")
	endDate := prompt(in, "End date (YYYY-MM-DD): ")

	fmt.Println("\nOptional preferences (press Enter to skip):")
	budget := prompt(in, "Budget (low/medium/high): ")
	interestsInput := prompt(in, "Interests (comma-separated, e.g., culture,nature,adventure): ")
	region := prompt(in, "Preferred region (e.g., Europe, Asia, Americas): ")
	climate := prompt(in, "Preferred climate (warm/cold/moderate): ")

	var prefs *planner.Preferences
	if budget != "" || interestsInput != "" || region != "" || climate != "" {
		prefs = &planner.Preferences{
			Budget:  budget,
			Region:  region,
			Climate: climate,
		}
		if interestsInput != "" {
			for _, i := range strings.Split(interestsInput, ",") {
				if i = strings.TrimSpace(i); i != "" {
					prefs.Interests = append(prefs.Interests, i)
				}
			}
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("Analyzing your travel dates and generating recommendations...")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	stream, err := p.RecommendStream(ctx, startDate, endDate, prefs)
	if err != nil {
		return err
	}

	for {
		chunk, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		fmt.Print(chunk)
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	return nil
}

// loadConfig reads the environment and lets an explicit key override
// GEMINI_API_KEY. With an override the missing-key error does not apply.
func loadConfig(apiKeyOverride string) (config.Config, error) {
	cfg, err := config.Load()
	if apiKeyOverride != "" {
		cfg.AI.GeminiKey = apiKeyOverride
		return cfg, nil
	}
	return cfg, err
}

func prompt(in *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}
