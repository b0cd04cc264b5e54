// Package cmd implements the llmrest CLI commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/llmrest/config"
	"github.com/kbukum/llmrest/llm"
	"github.com/kbukum/llmrest/logger"
	"github.com/kbukum/llmrest/version"
)

var (
	cfgFile   string
	envFile   string
	verbose   bool
	logFormat string

	appCfg appConfig
)

// appConfig is the CLI configuration: service-level settings plus the
// completion client section.
type appConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Completion llm.Config `yaml:"completion" mapstructure:"completion"`
}

// ApplyDefaults fills service defaults. A missing config file must still
// produce a runnable CLI.
func (c *appConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "llmrest"
	}
	c.ServiceConfig.ApplyDefaults()
}

// Validate checks the service section. The completion section is validated
// by llm.New after flag merging.
func (c *appConfig) Validate() error {
	return c.ServiceConfig.Validate()
}

var rootCmd = &cobra.Command{
	Use:               "llmrest",
	Short:             "llmrest — batch completion client for hosted LLM endpoints",
	Long:              "llmrest sends prompt batches to a hosted completion endpoint and prints one completion per prompt.",
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "path to .env file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console or json")

	rootCmd.Version = version.GetShortVersion()

	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration and initializes logging for every command.
func setup(cmd *cobra.Command, args []string) error {
	var opts []config.LoaderOption
	if cfgFile != "" {
		opts = append(opts, config.WithConfigFile(cfgFile))
	}
	if envFile != "" {
		opts = append(opts, config.WithEnvFile(envFile))
	}

	// Completions go to stdout; logs default to stderr.
	appCfg = appConfig{}
	appCfg.Logging.Output = "stderr"

	if err := config.Load("llmrest", &appCfg, opts...); err != nil {
		return err
	}

	if verbose {
		appCfg.Logging.Level = "debug"
	}
	if logFormat != "" {
		appCfg.Logging.Format = logFormat
	}
	logger.Init(appCfg.Logging)
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
