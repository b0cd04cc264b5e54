package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/llmrest/llm"
	"github.com/kbukum/llmrest/observability"
	"github.com/kbukum/llmrest/util"
	"github.com/kbukum/llmrest/version"
)

var (
	statusAPI     string
	statusURL     string
	statusTimeout time.Duration
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check completion endpoint reachability",
	Long: "Probes the configured completion endpoint and prints the service " +
		"health as JSON. Exits non-zero when the endpoint is unreachable.",
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusAPI, "api", "", "completion provider (default OpenAI)")
	statusCmd.Flags().StringVar(&statusURL, "url", "", "endpoint URL override")
	statusCmd.Flags().DurationVar(&statusTimeout, "timeout", 10*time.Second, "probe timeout")
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := appCfg.Completion

	params := make(map[string]any, len(cfg.Params)+1)
	for k, v := range cfg.Params {
		params[k] = v
	}
	cfg.Params = params

	cfg.API = llm.API(util.Coalesce(statusAPI, string(cfg.API), string(llm.APIOpenAI)))
	if statusURL != "" {
		cfg.Params["url"] = statusURL
	}

	// The status probe makes a single attempt; retry exhaustion belongs to
	// completion calls, not reachability checks.
	cfg.MaxTries = 1
	cfg.Timeout = statusTimeout

	client, err := llm.New(cfg)
	if err != nil {
		return err
	}
	defer client.Close(cmd.Context())

	health := observability.NewServiceHealth(appCfg.Name, version.Version)
	health.AddComponent(client.CheckHealth(cmd.Context()))

	data, err := json.MarshalIndent(health, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	if !health.Healthy() {
		return fmt.Errorf("service is %s", health.Status)
	}
	return nil
}
