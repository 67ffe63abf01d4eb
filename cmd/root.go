package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/votesmart/config"
	"github.com/s0up4200/votesmart/filter"
	"github.com/s0up4200/votesmart/votesmart"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *votesmart.Client
	filters *filter.Manager

	appVersion = "dev"
	buildTime  = "unknown"

	// Command flags
	outputFormat string
	apiKeyFlag   string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "votesmart",
	Short: "Query the Project Vote Smart API from the command line",
	Long: `votesmart is a CLI for the Project Vote Smart API. It can call any
operation by name, filter the results with expressions and print them as a
table, JSON or YAML.

The API key is read from votesmart.api_key in the config file, the
VOTESMART_API_KEY environment variable, a .env file or --api-key.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version reported by --version and used by update
func SetVersion(version, built string) {
	appVersion = version
	buildTime = built
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, built)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json or yaml")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "Vote Smart API key (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(opsCmd)
	rootCmd.AddCommand(biosCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(updateCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Command line overrides
	if cmd.Flags().Changed("output") {
		cfg.Output.Format = outputFormat
	}
	if apiKeyFlag != "" {
		cfg.VoteSmart.APIKey = apiKeyFlag
	}

	logger = setupLogger(cfg.Logging)

	client = votesmart.NewClient(cfg.VoteSmart.APIKey, logger,
		votesmart.WithBaseURL(cfg.VoteSmart.BaseURL),
		votesmart.WithTimeout(cfg.VoteSmart.Timeout),
		votesmart.WithUserAgent("votesmart-cli/"+appVersion),
	)
	if !client.HasCredential() {
		logger.Debug().Msg("No API key configured; API calls will fail")
	}

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filter.Presets); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; no color when stderr is redirected
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
