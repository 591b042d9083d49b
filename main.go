package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/icedtinat/lumina/config"
	"github.com/icedtinat/lumina/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Generate the field without graphics and exit")
	logStats := flag.Bool("log-stats", false, "Output rolling perf stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")
	text := flag.String("text", "", "Source text for the glyph set (overrides config)")
	textFile := flag.String("text-file", "", "File to read the source text from (overrides -text)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *textFile != "" {
		data, err := os.ReadFile(*textFile)
		if err != nil {
			slog.Error("failed to read text file", "error", err)
			os.Exit(1)
		}
		cfg.Sphere.Text = string(data)
	} else if *text != "" {
		cfg.Sphere.Text = *text
	}

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	}

	if *headless {
		slog.Info("starting headless generation", "seed", rngSeed)
		if err := game.RunHeadless(opts); err != nil {
			slog.Error("headless generation failed", "error", err)
			os.Exit(1)
		}
		return
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Lumina")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.New(opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	frames := 0
	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		frames++
		if *maxFrames > 0 && frames >= *maxFrames {
			break
		}
	}
}
