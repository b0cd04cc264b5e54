package validation

import (
	"errors"
	"strings"
	"testing"
)

type testConfig struct {
	Name     string `json:"name" validate:"required"`
	MaxTries int    `json:"max_tries" validate:"min=1"`
	Mode     string `json:"mode" validate:"omitempty,oneof=strict lenient"`
}

func TestValidate_Passes(t *testing.T) {
	cfg := testConfig{Name: "completion", MaxTries: 3, Mode: "strict"}
	if err := Validate(cfg); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidate_CollectsFieldErrors(t *testing.T) {
	cfg := testConfig{MaxTries: 0, Mode: "chaotic"}
	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %T", err)
	}
	if len(verr.Fields) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(verr.Fields), verr.Fields)
	}
}

func TestValidate_UsesJSONTagNames(t *testing.T) {
	cfg := testConfig{Name: "x", MaxTries: 0}
	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "max_tries") {
		t.Errorf("expected json tag name in message, got %s", err.Error())
	}
}

func TestValidate_SnakeCaseFallback(t *testing.T) {
	type untagged struct {
		ServiceName string `validate:"required"`
	}
	err := Validate(untagged{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "service_name") {
		t.Errorf("expected snake_case field name, got %s", err.Error())
	}
}

func TestValidate_MessageFormats(t *testing.T) {
	tests := []struct {
		name string
		cfg  testConfig
		want string
	}{
		{"required", testConfig{MaxTries: 1}, "is required"},
		{"min", testConfig{Name: "x", MaxTries: 0}, "must be at least 1"},
		{"oneof", testConfig{Name: "x", MaxTries: 1, Mode: "other"}, "must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected message to contain %q, got %s", tt.want, err.Error())
			}
		})
	}
}
