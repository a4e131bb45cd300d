package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/reelspin/audio"
	"github.com/lixenwraith/reelspin/config"
	"github.com/lixenwraith/reelspin/core"
	"github.com/lixenwraith/reelspin/game"
	"github.com/lixenwraith/reelspin/metrics"
)

var (
	configFlag  = flag.String("config", "", "YAML config file layered over the defaults")
	debugFlag   = flag.Bool("debug", false, "Enable debug logging to the configured log file")
	seedFlag    = flag.Uint64("seed", 0, "Symbol RNG seed, 0 picks a random one")
	metricsFlag = flag.String("metrics", "", "Serve prometheus metrics on this address, e.g. :9090")
	muteFlag    = flag.Bool("mute", false, "Start with audio muted")
	printFlag   = flag.Bool("print-config", false, "Print the effective configuration and exit")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "reelspin: %v\n", err)
		return 2
	}

	if *printFlag {
		out, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "reelspin: %v\n", err)
			return 1
		}
		_, _ = os.Stdout.Write(out)
		return 0
	}

	log, closeLog := setupLogging(cfg.Log)
	defer closeLog()

	if _, err := maxprocs.Set(maxprocs.Logger(log.Sugar().Debugf)); err != nil {
		log.Warn("GOMAXPROCS not adjusted", zap.Error(err))
	}

	// Sound is optional, the game continues silently without a device
	sound := audio.NewSoundManager(audio.Config{
		Enabled:      cfg.Audio.Enabled,
		MasterVolume: cfg.Audio.MasterVolume,
	}, log.Named("audio"))
	if err := sound.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	defer sound.Cleanup()

	g, err := game.New(cfg, game.WithLogger(log), game.WithSound(sound))
	if err != nil {
		log.Error("startup failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "reelspin: %v\n", err)
		return 1
	}
	defer g.Close()

	if err := play(g, cfg, log); err != nil {
		log.Error("exit with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "reelspin: %v\n", err)
		return 1
	}
	log.Info("bye")
	return 0
}

// play owns the terminal for the lifetime of the game loop and the metrics server
func play(g *game.Game, cfg config.Config, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	core.SetTerminalReset(screen.Fini)
	// Normal exit terminal cleanup
	defer func() {
		core.SetTerminalReset(nil)
		screen.Fini()
	}()
	// Panic Recovery: ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, egCtx := errgroup.WithContext(ctx)
	if cfg.Metrics.Addr != "" {
		srv := metrics.NewServer(cfg.Metrics.Addr, metrics.NewRouter(g.Metrics().Registry()), log.Named("metrics"))
		eg.Go(func() error { return srv.Run(egCtx) })
	}

	runErr := g.Run(egCtx, screen)
	cancel()
	return errors.Join(runErr, eg.Wait())
}

// loadConfig reads the file and applies command line overrides on top
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}

	if *debugFlag {
		cfg.Log.Enabled = true
		cfg.Log.Level = "debug"
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *metricsFlag != "" {
		cfg.Metrics.Addr = *metricsFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	return cfg, cfg.Validate()
}
