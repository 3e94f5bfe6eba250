// Command territory runs a match, either in the terminal or headless
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/territory/audio"
	"github.com/lixenwraith/territory/config"
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/game"
	"github.com/lixenwraith/territory/render"
	"github.com/lixenwraith/territory/service"
	"github.com/lixenwraith/territory/snapshot"
)

var (
	configPath = flag.String("config", "", "YAML match config, defaults when empty")
	seedFlag   = flag.Int64("seed", 0, "Override the map seed, 0 keeps the config value")
	headless   = flag.Bool("headless", false, "Run without a terminal UI")
	ticks      = flag.Int("ticks", 0, "Headless tick limit per match, 0 runs until the match ends")
	matches    = flag.Int("matches", 1, "Headless matches to play back to back, each on the next seed")
	audioFlag  = flag.Bool("audio", false, "Start with sound enabled")
	logPath    = flag.String("log", "", "Log file, headless runs log to stderr when empty")
	logLevel   = flag.String("log-level", "info", "debug, info, warn or error")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "territory: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	level, err := parseLevel(*logLevel)
	if err != nil {
		return err
	}
	// The terminal UI owns stdout/stderr, its logs go to a file or nowhere
	var fallback io.Writer = os.Stderr
	if !*headless {
		fallback = io.Discard
	}
	logger, closer, err := setupLogging(*logPath, level, fallback)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *seedFlag != 0 {
		cfg.Map.Seed = *seedFlag
	}

	match, err := game.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *headless {
		return runHeadless(ctx, match, logger)
	}
	return runTerminal(ctx, match, logger)
}

// runHeadless plays the requested matches as fast as possible and logs each outcome
// Later matches restart the same world on consecutive seeds
func runHeadless(ctx context.Context, match *game.Match, logger *slog.Logger) error {
	for n := 0; n < max(*matches, 1); n++ {
		if ctx.Err() != nil {
			break
		}
		if n > 0 {
			match.Restart(match.Seed() + 1)
		}
		playHeadless(ctx, match)
		logSummary(logger, n, match.Snapshot())
	}
	logger.Info("status", "counters", match.World().Resources.Status)
	return nil
}

func playHeadless(ctx context.Context, match *game.Match) {
	for i := 0; *ticks == 0 || i < *ticks; i++ {
		if ctx.Err() != nil {
			return
		}
		match.Step()
		if _, ended := match.Ended(); ended {
			return
		}
	}
}

func logSummary(logger *slog.Logger, n int, s snapshot.Snapshot) {
	attrs := []any{"match", n + 1, "tick", s.Tick, "digest", snapshot.Sum(s).String()}
	for _, p := range s.Points {
		attrs = append(attrs, fmt.Sprintf("player_%d_tiles", p.Player), s.Owned(p.Player))
	}
	if s.Ended {
		attrs = append(attrs, "winner", s.Winner)
	}
	logger.Info("match summary", attrs...)
}

// runTerminal supervises the tick loop and the view until the user quits or a signal arrives
func runTerminal(ctx context.Context, match *game.Match, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	screenSvc := render.NewScreenService(screen)
	audioSvc := audio.NewService(*audioFlag)

	var services service.Group
	services.Add(screenSvc)
	services.Add(audioSvc)
	if err := services.Start(); err != nil {
		return err
	}
	logger.Info("services started", "services", services.Names())
	defer func() {
		if err := services.Stop(); err != nil {
			logger.Warn("service shutdown", "error", err)
		}
	}()

	sound := audioSvc.Engine()
	match.Register(audioSvc.Handler())

	view := render.NewView(screen, match)
	view.SetMuteToggle(sound.ToggleMute, sound.IsMuted())
	view.Update(match.Snapshot())

	g, gctx := errgroup.WithContext(ctx)
	gctx, cancel := context.WithCancel(gctx)
	defer cancel()

	// The match stopping at its end keeps the view up to show the result
	g.Go(func() error {
		return match.Run(gctx, view.Observe)
	})
	g.Go(func() error {
		defer cancel()
		return view.Run(gctx)
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	played, dropped := sound.Stats()
	logger.Info("session closed", "tick", match.Snapshot().Tick, "sounds_played", played, "sounds_dropped", dropped)
	return err
}
