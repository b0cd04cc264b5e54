package llm

import (
	"os"
	"strings"
	"time"

	"github.com/kbukum/llmrest/httpclient"
	"github.com/kbukum/llmrest/util"
	"github.com/kbukum/llmrest/validation"
)

const (
	defaultMaxTries = 3
	defaultTimeout  = 30 * time.Second
)

// Config configures a completion Client. Configuration is fixed at
// construction; the client never mutates it afterwards.
type Config struct {
	// Name identifies the client in logs and metrics. Defaults to
	// "<api>-llm", lowercased.
	Name string `yaml:"name" mapstructure:"name"`

	// API selects the completion provider.
	API API `yaml:"api" mapstructure:"api"`

	// Params are provider-specific parameters merged into every request
	// body (model, temperature, and so on). A "url" entry overrides the
	// provider default endpoint and never reaches the body. The "prompt"
	// key is reserved for the prompt batch and cannot be overridden.
	Params map[string]any `yaml:"params" mapstructure:"params"`

	// Strict controls how API-level error payloads surface: true fails the
	// call, false returns the serialized payload once per prompt.
	Strict bool `yaml:"strict" mapstructure:"strict"`

	// MaxTries is the number of attempts when the endpoint is unreachable.
	// Defaults to 3.
	MaxTries int `yaml:"max_tries" mapstructure:"max_tries" validate:"min=1"`

	// Timeout is the per-attempt request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"min=1"`

	// Key is the API credential sent as a bearer token. Defaults to the
	// provider's environment variable (OPENAI_API_KEY for OpenAI). An
	// empty key still sends the Authorization header; the provider
	// rejects it, not this client.
	Key string `yaml:"key" mapstructure:"key"`

	// MaxQueriesPerSecond caps the outbound request rate. Zero disables
	// rate limiting.
	MaxQueriesPerSecond float64 `yaml:"max_queries_per_second" mapstructure:"max_queries_per_second"`

	// Headers are extra headers applied to every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// TLS configures TLS for the HTTP transport.
	TLS *httpclient.TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ApplyDefaults fills in zero-value fields. The credential lookup happens
// here, once; later environment changes do not affect a constructed client.
func (c *Config) ApplyDefaults() {
	c.MaxTries = util.Coalesce(c.MaxTries, defaultMaxTries)
	c.Timeout = util.Coalesce(c.Timeout, defaultTimeout)
	if c.Key == "" {
		if envKey, ok := credentialEnv[c.API]; ok {
			c.Key = os.Getenv(envKey)
		}
	}
	if c.Name == "" && c.API != "" {
		c.Name = strings.ToLower(string(c.API)) + "-llm"
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if !c.API.Supported() {
		return NewConfigError(string(c.API) + " is not one of the supported APIs (" + supportedList() + ").")
	}
	if err := validation.Validate(c); err != nil {
		return &Error{Code: ErrCodeConfig, Message: err.Error(), Err: err}
	}
	return nil
}
