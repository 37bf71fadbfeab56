package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// RawSettings is the flat key/value view of one environment file after the
// process-environment overlay has been applied.
type RawSettings map[string]string

// recognizedKeys are the settings this subsystem understands. The
// process-environment overlay applies only to these; ENV_FILE is consumed
// earlier, by resolution.
var recognizedKeys = []string{
	"ALPACA_API_KEY",
	"ALPACA_SECRET_KEY",
	"OPENAI_API_KEY",
	"ALPACA_API_URL",
	"ALPACA_DATA_API_URL",
	"ENVIRONMENT",
	"TARGET_INDEX_FUNDS",
	"DEBUG",
	"REDIS_HOST",
	"REDIS_PORT",
	"REDIS_PASSWORD",
	"REDIS_DB",
	"REDIS_USE_SSL",
}

// Read loads the resolved file and overlays the process environment on top.
//
// The file only supplies defaults: for every recognized key that the process
// environment defines, the environment value wins, key by key. This lets an
// operator override a single secret without editing the file.
func Read(src Source) (RawSettings, []Warning, error) {
	b, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("read configuration file %q: %w", src.Path, err)
	}

	raw, warnings, err := Parse(bytes.NewReader(b))
	if err != nil {
		return nil, nil, fmt.Errorf("parse configuration file %q: %w", src.Path, err)
	}

	for _, key := range recognizedKeys {
		if v, ok := os.LookupEnv(key); ok {
			raw[key] = v
		}
	}

	return raw, warnings, nil
}

// Parse reads KEY=VALUE lines from r. Blank lines and lines starting with #
// are ignored. The value is the literal remainder of the line after the first
// =, with no quoting, escaping, or variable expansion. Malformed lines are
// skipped with a warning, never fatally; a failed read is an error, since a
// truncated file must not pass for a complete one.
func Parse(r io.Reader) (RawSettings, []Warning, error) {
	raw := make(RawSettings)
	var warnings []Warning

	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			warnings = append(warnings, Warning{
				Kind:    WarnParse,
				Message: fmt.Sprintf("line %d is malformed and was skipped", n),
			})
			continue
		}

		raw[key] = value
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}

	return raw, warnings, nil
}
