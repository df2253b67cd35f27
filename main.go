package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/valve-wheel/internal/config"
	"github.com/iburimskiy/valve-wheel/internal/game"
	"github.com/iburimskiy/valve-wheel/internal/prefs"
	"github.com/iburimskiy/valve-wheel/internal/sound"
	"github.com/iburimskiy/valve-wheel/internal/sound/beepout"
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		slog.Error("valve-wheel failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	mgr, err := config.NewManager(*configFlag)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := mgr.Config()

	log := newLogger(cfg.Log.Level, *debugFlag)
	slog.SetDefault(log)
	log.Info("config loaded", "path", mgr.Path())

	if *pickAssetsFlag {
		dir, err := pickAssetsDir(cfg.Audio.AssetsDir)
		switch {
		case err != nil:
			log.Warn("folder picker failed", "err", err)
		case dir != "":
			if err := mgr.SetAssetsDir(dir); err != nil {
				log.Warn("saving assets dir", "err", err)
			}
		}
	}
	assetsDir := cfg.Audio.AssetsDir
	if *assetsFlag != "" {
		assetsDir = *assetsFlag
	}

	store := openPrefs(log, cfg.Prefs)
	defer store.Close()

	var backend sound.Backend = sound.Silent{}
	if b, err := beepout.New(cfg.Audio.SampleRate, cfg.Audio.Buffer); err != nil {
		log.Warn("audio output unavailable, running silent", "err", err)
	} else {
		backend = b
		defer b.Close()
	}

	var resolver *sound.Resolver
	if assetsDir != "" {
		resolver = sound.NewResolver(os.DirFS(assetsDir))
		log.Info("sound bundle", "dir", assetsDir)
	}
	svc := sound.NewService(backend, resolver, store, log)

	g, err := game.New(svc, log, *debugFlag)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func newLogger(level string, debug bool) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	if debug {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// openPrefs falls back to an in-memory store so a broken preference file
// never blocks the game.
func openPrefs(log *slog.Logger, cfg config.PrefsConfig) prefs.Store {
	backend, path := cfg.Backend, cfg.Path
	if *prefsBackendFlag != "" {
		backend = *prefsBackendFlag
	}
	if *prefsPathFlag != "" {
		path = *prefsPathFlag
	}
	store, err := prefs.Open(backend, path)
	if err != nil {
		log.Warn("preferences unavailable, using memory", "backend", backend, "path", path, "err", err)
		return prefs.NewMemory()
	}
	log.Debug("preferences opened", "backend", backend, "path", path)
	return store
}

func pickAssetsDir(current string) (string, error) {
	dir, err := zenity.SelectFile(
		zenity.Title("Choose Sound Folder"),
		zenity.Directory(),
		zenity.Filename(current),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return dir, nil
}
