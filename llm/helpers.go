package llm

import (
	"context"
	"fmt"

	"github.com/kbukum/llmrest/provider"
)

// Complete sends a single prompt through a completion backend and returns
// its completion. The backend may be a *Client or any middleware-wrapped
// chain around one.
func Complete(ctx context.Context, backend provider.RequestResponse[[]string, []string], prompt string) (string, error) {
	outputs, err := backend.Execute(ctx, []string{prompt})
	if err != nil {
		return "", err
	}
	if len(outputs) != 1 {
		return "", NewResponseError(fmt.Sprintf("expected 1 completion, got %d", len(outputs)), "")
	}
	return outputs[0], nil
}
