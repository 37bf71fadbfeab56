package config

import (
	"strconv"
	"strings"
)

// maskFill is the fixed-width placeholder used for the hidden portion of a
// secret. Using a fixed width keeps the display from leaking the secret's
// length.
const maskFill = "********"

// Entry is one key/value pair of a redacted summary, display-safe.
type Entry struct {
	Key   string
	Value string
}

// Summary is an ordered, display-safe projection of a Config. Secret values
// are masked; everything else passes through verbatim. The summary is for
// diagnostics only and is never handed to downstream API clients.
type Summary []Entry

func (s Summary) String() string {
	var b strings.Builder
	for i, e := range s {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Key)
		b.WriteByte('=')
		b.WriteString(e.Value)
	}
	return b.String()
}

// Summary builds the redacted view of the configuration.
func (c *Config) Summary() Summary {
	entries := Summary{
		{"ENVIRONMENT", string(c.Environment)},
		{"ENV_FILE_PATH", c.Source.Path},
		{"ALPACA_API_KEY", c.AlpacaAPIKey},
		{"ALPACA_SECRET_KEY", c.AlpacaSecretKey},
		{"OPENAI_API_KEY", c.OpenAIAPIKey},
		{"ALPACA_API_URL", c.AlpacaAPIURL},
		{"ALPACA_DATA_API_URL", c.AlpacaDataAPIURL},
		{"TARGET_INDEX_FUNDS", c.TargetIndexFunds.String()},
		{"DEBUG", strconv.FormatBool(c.Debug.Bool())},
		{"REDIS_HOST", c.RedisHost},
		{"REDIS_PORT", strconv.Itoa(c.RedisPort)},
		{"REDIS_PASSWORD", c.RedisPassword},
	}
	for i, e := range entries {
		if IsSecretKey(e.Key) {
			entries[i].Value = MaskSecret(e.Value)
		}
	}
	return entries
}

// MaskSecret hides a secret for display, keeping the first and last four
// characters for recognition. Values shorter than eight characters are masked
// entirely so nothing of them can be recovered.
func MaskSecret(v string) string {
	if len(v) < 8 {
		return maskFill
	}
	return v[:4] + maskFill + v[len(v)-4:]
}

// IsSecretKey reports whether a setting name holds a credential and must be
// masked before display.
func IsSecretKey(name string) bool {
	upper := strings.ToUpper(name)
	return strings.Contains(upper, "API_KEY") ||
		strings.Contains(upper, "SECRET") ||
		strings.Contains(upper, "PASSWORD") ||
		strings.Contains(upper, "TOKEN")
}
