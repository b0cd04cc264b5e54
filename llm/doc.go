// Package llm provides a client for hosted LLM completion endpoints.
//
// A Client sends a batch of prompts as a single HTTP request and maps the
// JSON response back to one completion per prompt. Connection failures are
// retried up to a configured attempt count; API-level error payloads either
// fail the call or are returned as diagnostic strings, controlled by the
// Strict flag.
//
// Only the completions endpoint is supported. Chat-style endpoints use a
// different request and response shape and are not covered by this package.
//
//	client, err := llm.New(llm.Config{
//		API:    llm.APIOpenAI,
//		Params: map[string]any{"model": "text-davinci-003", "temperature": 0.3},
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close(ctx)
//
//	completions, err := client.Complete(ctx, []string{"Hello", "World"})
//
// The client implements provider.RequestResponse[[]string, []string], so it
// composes with provider middleware:
//
//	backend := provider.Chain(
//		provider.WithLogging[[]string, []string](log),
//		provider.WithMetrics[[]string, []string](metrics),
//	)(client)
package llm
