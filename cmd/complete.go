package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kbukum/llmrest/llm"
	"github.com/kbukum/llmrest/logger"
	"github.com/kbukum/llmrest/observability"
	"github.com/kbukum/llmrest/provider"
	"github.com/kbukum/llmrest/util"
	"github.com/kbukum/llmrest/version"
)

var (
	completeAPI      string
	completeModel    string
	completeURL      string
	completeStrict   bool
	completeMaxTries int
	completeTimeout  time.Duration
	completeTrace    bool
)

var completeCmd = &cobra.Command{
	Use:   "complete [prompt ...]",
	Short: "Send prompts to the completion endpoint",
	Long: "Sends a batch of prompts in a single request and prints one completion " +
		"per line. Prompts come from the arguments, or from stdin (one per line) " +
		"when no arguments are given.",
	RunE: runComplete,
}

func init() {
	completeCmd.Flags().StringVar(&completeAPI, "api", "", "completion provider (default OpenAI)")
	completeCmd.Flags().StringVar(&completeModel, "model", "", "model parameter sent with the request")
	completeCmd.Flags().StringVar(&completeURL, "url", "", "endpoint URL override")
	completeCmd.Flags().BoolVar(&completeStrict, "strict", false, "fail on API-level error payloads")
	completeCmd.Flags().IntVar(&completeMaxTries, "max-tries", 0, "attempts when the endpoint is unreachable")
	completeCmd.Flags().DurationVar(&completeTimeout, "timeout", 0, "per-attempt request timeout")
	completeCmd.Flags().BoolVar(&completeTrace, "trace", false, "export traces and metrics via OTLP")
}

func runComplete(cmd *cobra.Command, args []string) error {
	prompts := args
	if len(prompts) == 0 {
		var err error
		prompts, err = readPrompts(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading prompts from stdin: %w", err)
		}
	}
	if len(prompts) == 0 {
		return fmt.Errorf("no prompts given")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := llm.New(completionConfig())
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	var backend provider.RequestResponse[[]string, []string] = client
	var opCtx *observability.OperationContext

	if completeTrace {
		metrics, shutdown, err := initTelemetry(ctx)
		if err != nil {
			return err
		}
		defer shutdown()

		backend = provider.Chain(
			provider.WithLogging[[]string, []string](logger.WithComponent("cli")),
			provider.WithMetrics[[]string, []string](metrics),
			provider.WithTracing[[]string, []string](appCfg.Name),
		)(client)
		opCtx = observability.NewOperationContext(appCfg.Name, "complete", uuid.NewString(), metrics)
	}

	completions, err := executeBatch(ctx, backend, opCtx, prompts)
	if err != nil {
		return err
	}

	for _, completion := range completions {
		fmt.Fprintln(cmd.OutOrStdout(), completion)
	}
	return nil
}

// completionConfig merges the config file's completion section with the
// command-line flags. Flags win.
func completionConfig() llm.Config {
	cfg := appCfg.Completion

	params := make(map[string]any, len(cfg.Params)+2)
	for k, v := range cfg.Params {
		params[k] = v
	}
	cfg.Params = params

	cfg.API = llm.API(util.Coalesce(completeAPI, string(cfg.API), string(llm.APIOpenAI)))
	cfg.MaxTries = util.Coalesce(completeMaxTries, cfg.MaxTries)
	cfg.Timeout = util.Coalesce(completeTimeout, cfg.Timeout)

	if completeModel != "" {
		cfg.Params["model"] = completeModel
	}
	if completeURL != "" {
		cfg.Params["url"] = completeURL
	}
	if completeStrict {
		cfg.Strict = true
	}
	return cfg
}

// executeBatch runs the batch through the backend, wrapped in a tracked
// operation when telemetry is enabled.
func executeBatch(ctx context.Context, backend provider.RequestResponse[[]string, []string], opCtx *observability.OperationContext, prompts []string) ([]string, error) {
	if opCtx == nil {
		return backend.Execute(ctx, prompts)
	}

	ctx, span := opCtx.StartSpanForOperation(ctx, "llmrest.complete")
	out, err := backend.Execute(ctx, prompts)
	status := "success"
	if err != nil {
		status = "error"
	}
	opCtx.EndOperation(ctx, span, status, err)
	return out, err
}

// initTelemetry starts the OTLP tracer and meter and builds the metric
// instruments. The returned shutdown flushes both providers.
func initTelemetry(ctx context.Context) (*observability.Metrics, func(), error) {
	tcfg := observability.DefaultTracerConfig(appCfg.Name)
	tcfg.ServiceVersion = version.Version
	tcfg.Environment = appCfg.Environment

	tp, err := observability.InitTracer(ctx, tcfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init tracer: %w", err)
	}

	mcfg := observability.DefaultMeterConfig(appCfg.Name)
	mcfg.ServiceVersion = version.Version
	mcfg.Environment = appCfg.Environment

	mp, err := observability.InitMeter(ctx, mcfg)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := observability.NewMetrics(observability.Meter(appCfg.Name))
	if err != nil {
		_ = mp.Shutdown(ctx)
		_ = tp.Shutdown(ctx)
		return nil, nil, fmt.Errorf("create metrics: %w", err)
	}

	shutdown := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mp.Shutdown(shutdownCtx)
		_ = tp.Shutdown(shutdownCtx)
	}
	return metrics, shutdown, nil
}

// readPrompts reads one prompt per line, skipping blank lines.
func readPrompts(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var prompts []string
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		prompts = append(prompts, scanner.Text())
	}
	return prompts, scanner.Err()
}
