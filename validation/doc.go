// Package validation provides struct tag validation built on the
// go-playground validator.
//
//	type Config struct {
//	    MaxTries int           `validate:"min=1"`
//	    Timeout  time.Duration `validate:"min=1"`
//	}
//	err := validation.Validate(cfg)
//
// Failures return a *validation.Error carrying one FieldError per
// offending field, with field names rendered in snake_case.
package validation
