// Package config loads folio's TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/folio/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # Configuration Fields
//
//	fetch_all_latency = "500ms"   # simulated latency of a full catalog load
//	fetch_one_latency = "200ms"   # simulated latency of a single-book lookup
//	refresh_interval  = "0s"      # background reload period, 0 disables it
//	log_path          = "~/.local/share/folio/folio.log"
//	log_level         = "info"    # debug, info, warn, error
//	log_format        = "text"    # text or json
//
// Durations use Go syntax and must not be negative. Tilde expansion is
// performed on log_path.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and invalid durations or log formats.
// A missing config file is not an error, so folio runs without one.
package config
