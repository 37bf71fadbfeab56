package config

import (
	"errors"
	"fmt"
	"strings"
)

// Package-specific errors
var (
	// ErrSourceNotFound is returned when no candidate environment file exists,
	// or when an explicitly requested file is missing.
	ErrSourceNotFound = errors.New("no configuration file found")

	// ErrValidationFailed is returned when one or more settings are missing or malformed.
	ErrValidationFailed = errors.New("configuration validation failed")
)

// SourceNotFoundError reports a failed resolution. When Override is set the
// caller asked for a specific file and it did not exist; resolution never
// falls back to the default search order in that case. Checked always lists
// every path that was tested, in the order it was tested.
type SourceNotFoundError struct {
	Override string
	Checked  []string
}

func (e *SourceNotFoundError) Error() string {
	if e.Override != "" {
		return fmt.Sprintf("configuration file %q does not exist", e.Override)
	}
	return fmt.Sprintf("no configuration file found, checked: %s", strings.Join(e.Checked, ", "))
}

func (e *SourceNotFoundError) Unwrap() error { return ErrSourceNotFound }

// ValidationError collects every missing or malformed setting found during a
// single validation pass. Callers always see the full set, never just the
// first failure.
type ValidationError struct {
	Fields []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, err := range e.Fields {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("configuration validation failed: %s", strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() []error {
	return append([]error{ErrValidationFailed}, e.Fields...)
}

// WarningKind classifies non-fatal findings reported alongside a load.
type WarningKind string

const (
	// WarnParse marks a malformed line that was skipped while reading a file.
	WarnParse WarningKind = "parse"
	// WarnConsistency marks an environment/endpoint mismatch.
	WarnConsistency WarningKind = "consistency"
	// WarnEmptyFunds marks a fund list that resolved to no symbols.
	WarnEmptyFunds WarningKind = "empty_funds"
	// WarnRedis marks incomplete Redis settings.
	WarnRedis WarningKind = "redis"
)

// Warning is a non-fatal finding. Warnings are reported to the caller but
// never block configuration loading.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}
