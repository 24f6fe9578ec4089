// Package main is the entry point for MazeBand.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/mazeband/internal/config"
	"github.com/samdwyer/mazeband/internal/game"
	"github.com/samdwyer/mazeband/internal/level"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	if cfg.Telemetry {
		setupOTelEnv()

		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Continuing without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	registry, err := cfg.Registry()
	if err != nil {
		log.Fatalf("Failed to load presets: %v", err)
	}
	levelCfg, def, err := cfg.Level(registry)
	if err != nil {
		log.Fatalf("Failed to resolve level settings: %v", err)
	}

	if cfg.Headless {
		if err := printLevel(ctx, levelCfg); err != nil {
			log.Fatalf("Generation failed: %v", err)
		}
		return
	}

	palette, err := def.Palette()
	if err != nil {
		log.Printf("Warning: %v, using default colors", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	g := game.New(screen, game.Config{
		Level:      levelCfg,
		Palette:    palette,
		ChaseDelay: game.DefaultChaseDelay,
	})
	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// printLevel generates one level and writes it to stdout as ASCII.
func printLevel(ctx context.Context, cfg level.Config) error {
	lvl, err := level.Build(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Print(lvl.Grid.String())
	fmt.Printf("algorithm: %s  seed: %d  id: %s\n", lvl.Algorithm(), lvl.Config.Seed, lvl.ID)
	fmt.Printf("cells: %d  links: %d  dead ends: %d  diameter: %d  mean distance: %.2f  score: %.3f\n",
		lvl.Stats.Cells, lvl.Stats.Links, lvl.Stats.DeadEnds,
		lvl.Stats.Diameter, lvl.Stats.MeanDistance, lvl.Stats.Score)
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Respect an endpoint that was configured explicitly
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// The .env file may hold an unexpanded variable reference for the
	// headers, so build them from the API key here
	apiKey := os.Getenv("MAZEBAND_HONEYCOMB_API_KEY")
	dataset := os.Getenv("MAZEBAND_HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "mazeband" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
