package provider_test

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"

	"github.com/kbukum/llmrest/logger"
	"github.com/kbukum/llmrest/observability"
	"github.com/kbukum/llmrest/provider"
)

type echoBackend struct {
	name string
}

func (e *echoBackend) Name() string                       { return e.name }
func (e *echoBackend) IsAvailable(_ context.Context) bool { return true }
func (e *echoBackend) Execute(_ context.Context, input string) (string, error) {
	return "echo:" + input, nil
}

type failingBackend struct{}

func (f *failingBackend) Name() string                       { return "fail" }
func (f *failingBackend) IsAvailable(_ context.Context) bool { return true }
func (f *failingBackend) Execute(_ context.Context, _ string) (string, error) {
	return "", errors.New("intentional failure")
}

func newTestMetrics(t *testing.T) *observability.Metrics {
	t.Helper()
	metrics, err := observability.NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}
	return metrics
}

func TestChain_Empty(t *testing.T) {
	b := &echoBackend{name: "test"}
	wrapped := provider.Chain[string, string]()(b)

	if wrapped.Name() != "test" {
		t.Fatalf("expected 'test', got %q", wrapped.Name())
	}
	result, err := wrapped.Execute(context.Background(), "hello")
	if err != nil || result != "echo:hello" {
		t.Fatalf("expected echo:hello, got %q, err %v", result, err)
	}
}

func TestChain_Order(t *testing.T) {
	// First middleware is outermost: enters first, exits last.
	var order []string

	mw := func(tag string) provider.Middleware[string, string] {
		return func(inner provider.RequestResponse[string, string]) provider.RequestResponse[string, string] {
			return &orderTracker[string, string]{inner: inner, tag: tag, order: &order}
		}
	}

	b := &echoBackend{name: "test"}
	wrapped := provider.Chain(mw("A"), mw("B"), mw("C"))(b)

	_, err := wrapped.Execute(context.Background(), "x")
	if err != nil {
		t.Fatal(err)
	}

	if len(order) != 6 {
		t.Fatalf("expected 6 entries, got %v", order)
	}
	if order[0] != "A:before" || order[1] != "B:before" || order[2] != "C:before" {
		t.Errorf("expected [A:before B:before C:before ...], got %v", order[:3])
	}
	if order[3] != "C:after" || order[4] != "B:after" || order[5] != "A:after" {
		t.Errorf("expected [... C:after B:after A:after], got %v", order[3:])
	}
}

type orderTracker[I, O any] struct {
	inner provider.RequestResponse[I, O]
	tag   string
	order *[]string
}

func (o *orderTracker[I, O]) Name() string                         { return o.inner.Name() }
func (o *orderTracker[I, O]) IsAvailable(ctx context.Context) bool { return o.inner.IsAvailable(ctx) }
func (o *orderTracker[I, O]) Execute(ctx context.Context, input I) (O, error) {
	*o.order = append(*o.order, o.tag+":before")
	result, err := o.inner.Execute(ctx, input)
	*o.order = append(*o.order, o.tag+":after")
	return result, err
}

func TestWithLogging_Success(t *testing.T) {
	b := &echoBackend{name: "log-test"}
	log := logger.NewDefault("test")
	wrapped := provider.WithLogging[string, string](log)(b)

	result, err := wrapped.Execute(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "echo:hello" {
		t.Fatalf("expected echo:hello, got %q", result)
	}
	if wrapped.Name() != "log-test" {
		t.Fatalf("expected name 'log-test', got %q", wrapped.Name())
	}
}

func TestWithLogging_Error(t *testing.T) {
	b := &failingBackend{}
	log := logger.NewDefault("test")
	wrapped := provider.WithLogging[string, string](log)(b)

	_, err := wrapped.Execute(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestWithLogging_DelegatesIsAvailable(t *testing.T) {
	b := &echoBackend{name: "avail-test"}
	log := logger.NewDefault("test")
	wrapped := provider.WithLogging[string, string](log)(b)

	if !wrapped.IsAvailable(context.Background()) {
		t.Fatal("expected IsAvailable to delegate to inner backend")
	}
}

func TestWithMetrics_Success(t *testing.T) {
	b := &echoBackend{name: "metrics-test"}
	wrapped := provider.WithMetrics[string, string](newTestMetrics(t))(b)

	result, err := wrapped.Execute(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "echo:hello" {
		t.Fatalf("expected echo:hello, got %q", result)
	}
	if wrapped.Name() != "metrics-test" {
		t.Fatalf("expected name 'metrics-test', got %q", wrapped.Name())
	}
}

func TestWithMetrics_Error(t *testing.T) {
	b := &failingBackend{}
	wrapped := provider.WithMetrics[string, string](newTestMetrics(t))(b)

	_, err := wrapped.Execute(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestWithMetrics_DelegatesIsAvailable(t *testing.T) {
	b := &echoBackend{name: "avail-test"}
	wrapped := provider.WithMetrics[string, string](newTestMetrics(t))(b)

	if !wrapped.IsAvailable(context.Background()) {
		t.Fatal("expected IsAvailable to delegate to inner backend")
	}
}

func TestWithTracing_Success(t *testing.T) {
	b := &echoBackend{name: "trace-test"}
	wrapped := provider.WithTracing[string, string]("my-service")(b)

	result, err := wrapped.Execute(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "echo:hello" {
		t.Fatalf("expected echo:hello, got %q", result)
	}
	if wrapped.Name() != "trace-test" {
		t.Fatalf("expected name 'trace-test', got %q", wrapped.Name())
	}
}

func TestWithTracing_Error(t *testing.T) {
	b := &failingBackend{}
	wrapped := provider.WithTracing[string, string]("my-service")(b)

	_, err := wrapped.Execute(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestWithTracing_DelegatesIsAvailable(t *testing.T) {
	b := &echoBackend{name: "avail-test"}
	wrapped := provider.WithTracing[string, string]("svc")(b)

	if !wrapped.IsAvailable(context.Background()) {
		t.Fatal("expected IsAvailable to delegate to inner backend")
	}
}

func TestChain_AllMiddlewares(t *testing.T) {
	b := &echoBackend{name: "full-stack"}
	log := logger.NewDefault("test")

	wrapped := provider.Chain(
		provider.WithLogging[string, string](log),
		provider.WithMetrics[string, string](newTestMetrics(t)),
		provider.WithTracing[string, string]("test-svc"),
	)(b)

	result, err := wrapped.Execute(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "echo:hello" {
		t.Fatalf("expected echo:hello, got %q", result)
	}
}
