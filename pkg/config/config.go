package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvFileVar names the process variable that overrides the file search order.
const EnvFileVar = "ENV_FILE"

// Environment selects between simulated and real trading.
type Environment string

const (
	// Paper trades against a simulated endpoint, no real capital at risk.
	Paper Environment = "paper"
	// Live trades against a production endpoint with real capital.
	Live Environment = "live"
)

// UnmarshalText implements encoding.TextUnmarshaler so typed env parsing can
// populate Environment fields directly.
func (e *Environment) UnmarshalText(text []byte) error {
	v := Environment(strings.ToLower(strings.TrimSpace(string(text))))
	switch v {
	case Paper, Live:
		*e = v
		return nil
	default:
		return fmt.Errorf("invalid environment %q: must be one of %q, %q", string(text), Paper, Live)
	}
}

func (e Environment) IsLive() bool { return e == Live }

// FundList is a comma-separated list of ticker symbols. Entries are trimmed
// and empty entries dropped, so "VTI, VOO ,  " parses to ["VTI","VOO"].
type FundList []string

func (f *FundList) UnmarshalText(text []byte) error {
	var funds FundList
	for _, part := range strings.Split(string(text), ",") {
		if sym := strings.TrimSpace(part); sym != "" {
			funds = append(funds, sym)
		}
	}
	*f = funds
	return nil
}

func (f FundList) String() string { return strings.Join(f, ",") }

// Flag is a boolean setting accepting true/false, 1/0, and yes/no in any
// case, matching the operator-facing conventions of the env files.
type Flag bool

func (f *Flag) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "true", "1", "yes":
		*f = true
	case "false", "0", "no":
		*f = false
	default:
		return fmt.Errorf("invalid boolean %q: must be one of true, false, 1, 0, yes, no", string(text))
	}
	return nil
}

func (f Flag) Bool() bool { return bool(f) }

// Config is the validated settings snapshot used by the rest of the
// application. It is constructed once at startup and must be treated as
// immutable afterwards; components receive it by reference rather than
// through any ambient global lookup.
type Config struct {
	AlpacaAPIKey     string      `env:"ALPACA_API_KEY,required,notEmpty"`
	AlpacaSecretKey  string      `env:"ALPACA_SECRET_KEY,required,notEmpty"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY,required,notEmpty"`
	AlpacaAPIURL     string      `env:"ALPACA_API_URL,required,notEmpty"`
	AlpacaDataAPIURL string      `env:"ALPACA_DATA_API_URL,required,notEmpty"`
	Environment      Environment `env:"ENVIRONMENT"`
	TargetIndexFunds FundList    `env:"TARGET_INDEX_FUNDS"`
	Debug            Flag        `env:"DEBUG"`

	// Redis settings are optional; incomplete values degrade to a warning
	// because Redis features are not critical for basic operation.
	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     int    `env:"REDIS_PORT"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`
	RedisUseSSL   Flag   `env:"REDIS_USE_SSL"`

	// Source records which file supplied the defaults, for audit logging.
	Source Source `env:"-"`
}

// optionalDefaults supply values for optional keys that are absent entirely.
// A key that is present but empty is never defaulted: an empty fund list
// stays empty (and warns), and an empty enum or boolean is a validation
// error. Explicit emptiness is an operator statement, not an omission.
var optionalDefaults = map[string]string{
	"ENVIRONMENT":        string(Paper),
	"TARGET_INDEX_FUNDS": "SPY,QQQ,DIA",
	"DEBUG":              "false",
	"REDIS_HOST":         "localhost",
	"REDIS_PORT":         "6379",
	"REDIS_DB":           "0",
	"REDIS_USE_SSL":      "false",
}

// Load resolves, reads, and validates configuration in one shot.
//
// An empty override falls back to the ENV_FILE variable before the default
// file search order kicks in. The returned warnings are non-fatal findings
// from both reading and validation; a non-nil error is either a
// *SourceNotFoundError or a *ValidationError and must abort startup of any
// dependent component.
func Load(override, dir string) (*Config, []Warning, error) {
	if override == "" {
		override = os.Getenv(EnvFileVar)
	}

	src, err := Resolve(override, dir)
	if err != nil {
		return nil, nil, err
	}

	raw, warnings, err := Read(src)
	if err != nil {
		return nil, nil, err
	}

	cfg, vwarns, err := Validate(raw)
	if err != nil {
		return nil, warnings, err
	}
	cfg.Source = src

	return cfg, append(warnings, vwarns...), nil
}
