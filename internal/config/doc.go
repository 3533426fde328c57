// Package config handles loading and parsing the atalaya configuration file.
//
// # Overview
//
// This package reads atalaya's TOML configuration to discover the scanner
// backend's API endpoint and the status poll cadence. The configuration
// surface is small: everything else is either a UI preference
// (see the prefs package) or a command-line flag.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/atalaya/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/atalaya/config.toml
//   - API endpoint: 127.0.0.1:8000 (the backend's default bind)
//   - Poll cadence: 10 seconds
//
// # TOML Format
//
// Example config.toml:
//
//	api_bind = "127.0.0.1:8000"
//	poll_seconds = 10
//
// Both fields are optional. Tilde expansion is performed on the config
// file path. Non-positive poll_seconds values are ignored in favor of the
// default.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead.
// This allows atalaya to work out-of-the-box against a local backend.
//
// # Usage Example
//
//	// Use default config path
//	cfg, err := config.Load("")
//	if err != nil {
//		log.Fatalf("failed to load config: %v", err)
//	}
//
//	// Access configuration
//	client, err := scanner.NewClient(cfg.APIBind)
//
// # Design Philosophy
//
// This package follows the principle of sensible defaults: atalaya should
// work immediately against a backend running on its default local port,
// without requiring any configuration file to exist.
//
// The config package is read-only and stateless - it loads configuration
// once at startup and returns an immutable Config struct. No global state
// or singleton patterns are used.
package config
