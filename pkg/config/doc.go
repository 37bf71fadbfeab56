// Package config resolves, loads, and validates the trading bot's layered
// environment configuration.
//
// Settings live in KEY=VALUE files with an explicit precedence order and a
// development/production split. Exactly one file is chosen per process
// invocation:
//
//  1. An explicit override (ENV_FILE variable or the -env-file flag). A
//     missing override is a hard error, never a silent fallback.
//  2. .env.dev in the working directory (development).
//  3. .env in the working directory (production).
//  4. The bundled examples/env.dev and examples/env.prod fallbacks.
//
// The chosen file only supplies defaults: process environment variables
// override file values key by key, which lets an operator swap a single
// secret in CI without editing the file.
//
// # Usage
//
//	cfg, warnings, err := config.Load("", workdir)
//	if err != nil {
//	    // *SourceNotFoundError or *ValidationError; abort startup.
//	}
//	for _, w := range warnings {
//	    slog.Warn(w.Message, slog.String("kind", string(w.Kind)))
//	}
//
// The returned Config is immutable by convention: construct it once at
// startup and pass it by reference to every component that needs it. There is
// no ambient global lookup and no hot reload.
//
// # Validation
//
// Validation reports every missing or malformed key in one *ValidationError
// rather than stopping at the first. The ENVIRONMENT flag and the Alpaca
// endpoint URL are cross-checked: a live environment pointing at the
// paper-trading host (or the reverse) produces a consistency warning so the
// mismatch is visible without being forbidden.
//
// # Redaction
//
// Config.Summary produces a display-safe projection for the -check-config
// diagnostic surface. Secret values keep at most their first and last four
// characters around a fixed-width mask; values shorter than eight characters
// are masked entirely. Downstream API clients always receive the unredacted
// Config.
package config
