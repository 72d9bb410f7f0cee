package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meadow/config"
	"meadow/sim"
	"meadow/telemetry"
	"meadow/view"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxSteps := flag.Int("max-steps", 0, "Stop after N ticks (0 = config run.steps)")
	headless := flag.Bool("headless", false, "Run without pacing delay")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	logStatus := flag.Int("log-status", 0, "Log population status every N ticks (0 = off)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	wsAddr := flag.String("ws-addr", "", "Listen address for the websocket status view (empty = off)")

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

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	steps := *maxSteps
	if steps == 0 {
		steps = cfg.Run.Steps
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	var views []view.View
	if *logStatus > 0 {
		views = append(views, view.LogView{Every: *logStatus})
	}
	if *wsAddr != "" {
		ws := view.NewWebSocketView(*wsAddr)
		defer ws.Close()
		views = append(views, ws)
	}

	s := sim.New(sim.Options{
		Seed:     rngSeed,
		Views:    views,
		Output:   output,
		LogStats: *logStats,
		Headless: *headless,
	})

	slog.Info("starting simulation",
		"seed", rngSeed,
		"steps", steps,
		"field_depth", cfg.Field.Depth,
		"field_width", cfg.Field.Width,
		"population", s.Population(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.Run(ctx, steps); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("simulation stopped", "error", err)
		os.Exit(1)
	}

	slog.Info("simulation finished",
		"step", s.Step(),
		"population", s.Population(),
		"viable", s.Viable(),
	)
}
