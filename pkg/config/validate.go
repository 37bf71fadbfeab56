package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

// paperHost is the fragment identifying Alpaca's paper-trading endpoint.
const paperHost = "paper-api.alpaca.markets"

// Validate turns a RawSettings mapping into a typed Config.
//
// Every missing or malformed key is collected before returning, so the
// resulting *ValidationError always reports the full set of problems rather
// than just the first one. Non-fatal findings (an empty fund list, an
// environment/endpoint mismatch, incomplete Redis settings) come back as
// warnings and never block loading.
func Validate(raw RawSettings) (*Config, []Warning, error) {
	var cfg Config
	fields := parseFields(&cfg, raw)
	fields = append(fields, checkKeyFormats(&cfg)...)
	fields = append(fields, checkPorts(&cfg)...)
	if len(fields) > 0 {
		return nil, nil, &ValidationError{Fields: fields}
	}

	return &cfg, collectWarnings(&cfg), nil
}

// parseFields populates cfg from the raw map via typed env parsing,
// flattening the parser's aggregate error into individual field errors.
// Defaults are merged in here, for absent keys only: env's envDefault
// mechanism would also substitute defaults for present-but-empty values,
// which must instead be taken at face value. The parser never hands an
// empty value to a field parser, so present-but-empty enum and boolean
// keys get their own check; empty numeric Redis keys stay zero and
// degrade to the incomplete-redis warning.
func parseFields(cfg *Config, raw RawSettings) []error {
	merged := make(map[string]string, len(optionalDefaults)+len(raw))
	for k, v := range optionalDefaults {
		merged[k] = v
	}
	for k, v := range raw {
		merged[k] = v
	}

	var fields []error
	for _, key := range []string{"ENVIRONMENT", "DEBUG", "REDIS_USE_SSL"} {
		if v, ok := raw[key]; ok && v == "" {
			fields = append(fields, fmt.Errorf("%s is set but empty; remove the line or supply a value", key))
		}
	}

	err := env.ParseWithOptions(cfg, env.Options{Environment: merged})
	if err == nil {
		return fields
	}

	var parsed []error
	var agg env.AggregateError
	if errors.As(err, &agg) {
		parsed = agg.Errors
	} else {
		parsed = []error{err}
	}

	// The parser reports struct field names; operators know the variable
	// names, so prefix parse failures with the env key.
	for _, ferr := range parsed {
		var perr env.ParseError
		if errors.As(ferr, &perr) {
			ferr = fmt.Errorf("%s: %w", envKeyForField(perr.Name), ferr)
		}
		fields = append(fields, ferr)
	}
	return fields
}

func envKeyForField(fieldName string) string {
	if f, ok := reflect.TypeOf(Config{}).FieldByName(fieldName); ok {
		if name, _, _ := strings.Cut(f.Tag.Get("env"), ","); name != "" && name != "-" {
			return name
		}
	}
	return fieldName
}

// checkKeyFormats applies the per-provider key shape checks. Missing keys are
// already reported by the required-field pass, so empty values are skipped
// here to avoid double-reporting.
func checkKeyFormats(cfg *Config) []error {
	var errs []error

	alpacaKeys := []struct {
		name string
		key  string
	}{
		{"ALPACA_API_KEY", cfg.AlpacaAPIKey},
		{"ALPACA_SECRET_KEY", cfg.AlpacaSecretKey},
	}
	for _, k := range alpacaKeys {
		if k.key == "" {
			continue
		}
		if len(k.key) < 20 || !isAlphanumeric(strings.ReplaceAll(k.key, "-", "")) {
			errs = append(errs, fmt.Errorf("%s has invalid format (should be alphanumeric and at least 20 characters)", k.name))
		}
	}

	if key := cfg.OpenAIAPIKey; key != "" {
		if !strings.HasPrefix(key, "sk-") || len(key) < 30 {
			errs = append(errs, errors.New(`OPENAI_API_KEY has invalid format (should start with "sk-" and be at least 30 characters)`))
		}
	}

	return errs
}

func checkPorts(cfg *Config) []error {
	if cfg.RedisPort < 0 || cfg.RedisPort > 65535 {
		return []error{fmt.Errorf("REDIS_PORT %d is out of range", cfg.RedisPort)}
	}
	return nil
}

func collectWarnings(cfg *Config) []Warning {
	var warnings []Warning

	if len(cfg.TargetIndexFunds) == 0 {
		warnings = append(warnings, Warning{
			Kind:    WarnEmptyFunds,
			Message: "TARGET_INDEX_FUNDS resolved to an empty list; no funds will be tracked",
		})
	}

	// The environment flag and the endpoint URL are allowed to diverge, but
	// the divergence must be visible to the operator.
	if cfg.AlpacaAPIURL != "" {
		onPaperHost := strings.Contains(cfg.AlpacaAPIURL, paperHost)
		switch {
		case cfg.Environment.IsLive() && onPaperHost:
			warnings = append(warnings, Warning{
				Kind:    WarnConsistency,
				Message: fmt.Sprintf("ENVIRONMENT=live but ALPACA_API_URL %q points at the paper-trading host", cfg.AlpacaAPIURL),
			})
		case !cfg.Environment.IsLive() && !onPaperHost:
			warnings = append(warnings, Warning{
				Kind:    WarnConsistency,
				Message: fmt.Sprintf("ENVIRONMENT=paper but ALPACA_API_URL %q does not point at the paper-trading host", cfg.AlpacaAPIURL),
			})
		}
	}

	if cfg.RedisHost == "" || cfg.RedisPort == 0 {
		warnings = append(warnings, Warning{
			Kind:    WarnRedis,
			Message: "Redis configuration is incomplete; Redis features will not be available",
		})
	}

	return warnings
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return len(s) > 0
}
