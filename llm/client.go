package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/llmrest/httpclient"
	"github.com/kbukum/llmrest/logger"
	"github.com/kbukum/llmrest/observability"
	"github.com/kbukum/llmrest/provider"
	"github.com/kbukum/llmrest/resilience"
)

const maxErrSnippet = 200

// Client sends prompt batches to a hosted completion endpoint and maps the
// response back to one output string per prompt. A Client is safe for
// concurrent use; its configuration is fixed at construction.
type Client struct {
	http     *httpclient.Client
	api      API
	url      string
	params   map[string]any
	strict   bool
	maxTries int
	timeout  time.Duration
	log      *logger.Logger
}

var _ provider.RequestResponse[[]string, []string] = (*Client)(nil)
var _ observability.HealthChecker = (*Client)(nil)

// New creates a completion client. The params mapping is copied; a "url"
// entry overrides the provider default endpoint and never reaches the
// request body.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	params := make(map[string]any, len(cfg.Params))
	for k, v := range cfg.Params {
		params[k] = v
	}

	url := defaultURLs[cfg.API]
	if raw, ok := params["url"]; ok {
		s, ok := raw.(string)
		if !ok {
			return nil, NewConfigError(fmt.Sprintf("url parameter must be a string, got %T.", raw))
		}
		url = s
		delete(params, "url")
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	log := logger.WithComponent("llm")

	hcfg := httpclient.Config{
		Name:    cfg.Name,
		Timeout: cfg.Timeout,
		Auth:    httpclient.BearerAuth(cfg.Key),
		Headers: headers,
		TLS:     cfg.TLS,
		Retry: &resilience.RetryConfig{
			MaxAttempts: cfg.MaxTries,
			RetryIf: func(err error) bool {
				return httpclient.IsConnection(err) || httpclient.IsTimeout(err)
			},
			OnRetry: func(attempt int, err error, _ time.Duration) {
				log.Warn("endpoint unreachable, retrying", logger.Fields(
					logger.FieldAttempt, attempt,
					logger.FieldURL, url,
					logger.FieldError, err.Error(),
				))
			},
		},
	}
	if cfg.MaxQueriesPerSecond > 0 {
		hcfg.RateLimiter = &resilience.RateLimiterConfig{
			Name:  cfg.Name,
			Rate:  cfg.MaxQueriesPerSecond,
			Burst: 1,
		}
	}

	hc, err := httpclient.New(hcfg)
	if err != nil {
		return nil, NewConfigError(err.Error())
	}

	return &Client{
		http:     hc,
		api:      cfg.API,
		url:      url,
		params:   params,
		strict:   cfg.Strict,
		maxTries: cfg.MaxTries,
		timeout:  cfg.Timeout,
		log:      log,
	}, nil
}

// Complete sends one POST request carrying the whole prompt batch and
// returns one completion per prompt, in order. Connection failures retry up
// to the configured attempt count; an endpoint answer, whatever its HTTP
// status, ends the retry loop and is mapped from its JSON payload.
func (c *Client) Complete(ctx context.Context, prompts []string) ([]string, error) {
	if prompts == nil {
		prompts = []string{}
	}

	body := make(map[string]any, len(c.params)+1)
	for k, v := range c.params {
		body[k] = v
	}
	body["prompt"] = prompts

	requestID := uuid.NewString()
	observability.SetSpanAttribute(ctx, observability.AttrRequestID, requestID)
	c.log.WithContext(ctx).Debug("sending completion request", logger.Fields(
		logger.FieldAPI, string(c.api),
		logger.FieldURL, c.url,
		logger.FieldPrompts, len(prompts),
	))

	resp, httpErr := c.http.Do(ctx, httpclient.Request{
		Method:  http.MethodPost,
		Path:    c.url,
		Headers: map[string]string{"X-Request-Id": requestID},
		Body:    body,
	})
	if httpclient.IsConnection(httpErr) || httpclient.IsTimeout(httpErr) {
		return nil, NewConnectivityError(fmt.Sprintf(
			"%s API could not be reached within %g seconds in %d attempts. Check your network connection and the availability of the %s API.",
			c.api, c.timeout.Seconds(), c.maxTries, c.api), httpErr)
	}
	if resp == nil {
		return nil, httpErr
	}

	// The payload is inspected regardless of HTTP status: error bodies
	// arrive on non-2xx answers, and a well-formed choices payload counts
	// as success whatever the status code.
	var payload map[string]any
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, NewResponseError(fmt.Sprintf(
			"%s API returned a response that is not valid JSON: %s", c.api, snippet(resp.Body)), "")
	}

	if _, ok := payload["error"]; ok {
		serialized := compactJSON(payload)
		if c.strict {
			return nil, NewResponseError("API call failed: "+serialized+".", serialized)
		}
		out := make([]string, len(prompts))
		for i := range out {
			out[i] = serialized
		}
		return out, nil
	}

	rawChoices, ok := payload["choices"]
	if !ok {
		serialized := compactJSON(payload)
		return nil, NewResponseError(fmt.Sprintf(
			"%s API response contains no choices: %s", c.api, serialized), serialized)
	}
	choices, ok := rawChoices.([]any)
	if !ok {
		serialized := compactJSON(payload)
		return nil, NewResponseError(fmt.Sprintf(
			"%s API response field choices is not an array: %s", c.api, serialized), serialized)
	}
	if len(choices) != len(prompts) {
		serialized := compactJSON(payload)
		return nil, NewResponseError(fmt.Sprintf(
			"%s API returned %d choices for %d prompts.", c.api, len(choices), len(prompts)), serialized)
	}

	out := make([]string, len(choices))
	for i, choice := range choices {
		if m, ok := choice.(map[string]any); ok {
			if text, ok := m["text"].(string); ok {
				out[i] = text
				continue
			}
		}
		out[i] = compactJSON(choice)
	}
	return out, nil
}

// Execute implements provider.RequestResponse. It is Complete under the
// generic backend interface, for composition with provider middleware.
func (c *Client) Execute(ctx context.Context, prompts []string) ([]string, error) {
	return c.Complete(ctx, prompts)
}

// Name implements provider.Provider.
func (c *Client) Name() string {
	return c.http.Name()
}

// IsAvailable reports whether the endpoint is reachable. Any HTTP answer,
// including an error status, counts as reachable.
func (c *Client) IsAvailable(ctx context.Context) bool {
	_, err := c.http.Do(ctx, httpclient.Request{Method: http.MethodGet, Path: c.url})
	if err == nil {
		return true
	}
	return !httpclient.IsConnection(err) && !httpclient.IsTimeout(err) && ctx.Err() == nil
}

// CheckHealth implements observability.HealthChecker.
func (c *Client) CheckHealth(ctx context.Context) observability.Health {
	h := observability.Health{
		Name:   c.Name(),
		Status: observability.HealthStatusUp,
		Details: map[string]string{
			"api": string(c.api),
			"url": c.url,
		},
	}
	if !c.IsAvailable(ctx) {
		h.Status = observability.HealthStatusDown
		h.Message = "endpoint unreachable"
	}
	return h
}

// URL returns the resolved completion endpoint.
func (c *Client) URL() string {
	return c.url
}

// Close releases idle connections held by the client.
func (c *Client) Close(ctx context.Context) error {
	return c.http.Close(ctx)
}

// compactJSON serializes v as compact JSON, falling back to fmt for values
// that cannot be marshaled.
func compactJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// snippet shortens a response body for inclusion in error messages.
func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > maxErrSnippet {
		return s[:maxErrSnippet] + "..."
	}
	return s
}
