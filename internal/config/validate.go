package config

import (
	"errors"

	"github.com/thoreinstein/dotstore"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidOutput indicates an unrecognized output format.
	ErrInvalidOutput = errors.New("output must be one of: text, json, yaml")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.DefaultKind != "" {
		if _, err := dotstore.ParseKind(cfg.DefaultKind); err != nil {
			errs = append(errs, &KindError{
				Kind: cfg.DefaultKind,
				Err:  err,
			})
		}
	}

	switch cfg.Output {
	case "", "text", "json", "yaml":
	default:
		errs = append(errs, ErrInvalidOutput)
	}

	return errs
}

// KindError reports an invalid default_kind value.
type KindError struct {
	Kind string
	Err  error
}

func (e *KindError) Error() string {
	return "default_kind " + e.Kind + ": " + e.Err.Error()
}

func (e *KindError) Unwrap() error {
	return e.Err
}
