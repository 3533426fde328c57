package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/atalayahq/atalaya/internal/config"
	"github.com/atalayahq/atalaya/internal/prefs"
	"github.com/atalayahq/atalaya/internal/scanner"
	"github.com/atalayahq/atalaya/internal/state"
	"github.com/atalayahq/atalaya/internal/ui"
)

// Options configure the atalaya application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/atalaya/prefs.toml
	APIBind    string // overrides the config file's api_bind
	PollEvery  int    // seconds; zero uses the config value
}

// Run boots the atalaya TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The alternate screen owns the terminal, so diagnostics go to a
	// file. The log overlay in the UI reads it back.
	if logFile := redirectLogging(cfg.LogPath); logFile != nil {
		defer logFile.Close()
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	apiBind := cfg.APIBind
	if opts.APIBind != "" {
		apiBind = opts.APIBind
	}
	client, err := scanner.NewClient(apiBind)
	if err != nil {
		return fmt.Errorf("init scanner client: %w", err)
	}

	store := &state.Store{}

	interval := time.Duration(cfg.PollSeconds) * time.Second
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Start background poller; it performs the immediate first refresh so
	// the header has data as soon as the backend answers.
	StartPoller(ctx, store, client, interval)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		ThemeName: userPrefs.Theme,
		Filter:    userPrefs.Filter,
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogPath,
	}
	return ui.Run(uiOpts)
}

// redirectLogging sends the standard logger to the diagnostic file.
// When the file cannot be opened the logger is silenced rather than
// left on stderr, which would tear the alternate screen.
func redirectLogging(path string) *os.File {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(file)
	return file
}
