package llm_test

import (
	"strings"
	"testing"
	"time"

	"github.com/kbukum/llmrest/llm"
)

func TestConfigApplyDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "from-env")

	cfg := llm.Config{API: llm.APIOpenAI}
	cfg.ApplyDefaults()

	if cfg.MaxTries != 3 {
		t.Errorf("expected 3 tries, got %d", cfg.MaxTries)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Timeout)
	}
	if cfg.Key != "from-env" {
		t.Errorf("expected key from environment, got %q", cfg.Key)
	}
	if cfg.Name != "openai-llm" {
		t.Errorf("expected derived name, got %q", cfg.Name)
	}
}

func TestConfigApplyDefaults_KeepsExplicitValues(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "from-env")

	cfg := llm.Config{
		API:      llm.APIOpenAI,
		Name:     "primary",
		Key:      "explicit",
		MaxTries: 7,
		Timeout:  time.Second,
	}
	cfg.ApplyDefaults()

	if cfg.MaxTries != 7 || cfg.Timeout != time.Second {
		t.Errorf("explicit values must be kept, got tries=%d timeout=%v", cfg.MaxTries, cfg.Timeout)
	}
	if cfg.Key != "explicit" {
		t.Errorf("explicit key must win over environment, got %q", cfg.Key)
	}
	if cfg.Name != "primary" {
		t.Errorf("explicit name must be kept, got %q", cfg.Name)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     llm.Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  llm.Config{API: llm.APIOpenAI, MaxTries: 3, Timeout: time.Second},
		},
		{
			name:    "unsupported API",
			cfg:     llm.Config{API: "Cohere", MaxTries: 3, Timeout: time.Second},
			wantErr: "Cohere is not one of the supported APIs (OpenAI).",
		},
		{
			name:    "empty API",
			cfg:     llm.Config{MaxTries: 3, Timeout: time.Second},
			wantErr: " is not one of the supported APIs (OpenAI).",
		},
		{
			name:    "max tries too low",
			cfg:     llm.Config{API: llm.APIOpenAI, MaxTries: 0, Timeout: time.Second},
			wantErr: "max_tries",
		},
		{
			name:    "timeout too low",
			cfg:     llm.Config{API: llm.APIOpenAI, MaxTries: 3},
			wantErr: "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !llm.IsConfig(err) {
				t.Errorf("expected config error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected message containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestSupportedAPIs(t *testing.T) {
	apis := llm.SupportedAPIs()
	if len(apis) != 1 || apis[0] != "OpenAI" {
		t.Errorf("expected [OpenAI], got %v", apis)
	}

	if !llm.APIOpenAI.Supported() {
		t.Error("expected OpenAI to be supported")
	}
	if llm.API("Anthropic").Supported() {
		t.Error("expected Anthropic to be unsupported")
	}
}
