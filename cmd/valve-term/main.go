// Command valve-term plays the valve wheel in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/valve-wheel/internal/config"
	"github.com/iburimskiy/valve-wheel/internal/prefs"
	"github.com/iburimskiy/valve-wheel/internal/sound"
	"github.com/iburimskiy/valve-wheel/internal/sound/beepout"
)

var (
	configFlag = flag.String("config", "", "path to the YAML config file")
	assetsFlag = flag.String("assets", "", "directory holding the sound bundle")
	logFlag    = flag.String("log", "", "write logs to this file; the terminal is busy drawing")
	debugFlag  = flag.Bool("debug", false, "log at debug level")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "valve-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	mgr, err := config.NewManager(*configFlag)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := mgr.Config()

	log, closeLog, err := newLogger(filepath.Dir(mgr.Path()))
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := prefs.Open(cfg.Prefs.Backend, cfg.Prefs.Path)
	if err != nil {
		log.Warn("preferences unavailable, using memory", "err", err)
		store = prefs.NewMemory()
	}
	defer store.Close()

	var backend sound.Backend = sound.Silent{}
	if b, err := beepout.New(cfg.Audio.SampleRate, cfg.Audio.Buffer); err != nil {
		log.Warn("audio output unavailable, running silent", "err", err)
	} else {
		backend = b
		defer b.Close()
	}

	assetsDir := cfg.Audio.AssetsDir
	if *assetsFlag != "" {
		assetsDir = *assetsFlag
	}
	var resolver *sound.Resolver
	if assetsDir != "" {
		resolver = sound.NewResolver(os.DirFS(assetsDir))
	}
	svc := sound.NewService(backend, resolver, store, log)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(screen, svc, log)
	defer a.close()
	a.run(ctx, config.TickInterval)
	return nil
}

// newLogger writes to -log, or to valve-term.log next to the config file.
func newLogger(dir string) (*slog.Logger, func(), error) {
	path := *logFlag
	if path == "" {
		path = filepath.Join(dir, "valve-term.log")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return log, func() { _ = f.Close() }, nil
}
