// Package cmd implements the datacatalog CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kbase/datacatalog/internal/cmd/output"
	"github.com/kbase/datacatalog/pkg/catalog"
	"github.com/kbase/datacatalog/pkg/logging"
)

var (
	configFile  string
	catalogPath string
	envName     string
	outputFlag  string
	verbose     bool
	quiet       bool

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "datacatalog",
	Short: "Data Source Catalog CLI",
	Long: `Datacatalog browses and validates the environment-scoped data source
catalog: the table of public data entries and example datasets that a data
browser presents per deployment environment (ci, next, prod).

The catalog compiled into the binary is used by default; pass --catalog to
load a document from disk instead.`,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.datacatalog.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "load the catalog document from this file instead of the embedded one")
	rootCmd.PersistentFlags().StringVar(&envName, "env", "", "environment to read (ci, next, prod)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	if err := viper.BindPFlag("env", rootCmd.PersistentFlags().Lookup("env")); err != nil {
		panic(fmt.Sprintf("Failed to bind env flag: %v", err))
	}
	if err := viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog")); err != nil {
		panic(fmt.Sprintf("Failed to bind catalog flag: %v", err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".datacatalog" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".datacatalog")
	}

	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("datacatalog")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	configureLogging()
}

// setupCommand is called before any command runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	if outputFlag == "" {
		outputFlag = string(output.DetectFormat(""))
	}
	if _, err := output.ParseFormat(outputFlag); err != nil {
		return err
	}
	return nil
}

// configureLogging sets up the logging system based on configuration.
func configureLogging() {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if quiet {
		level = zerolog.WarnLevel
	}
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		if parsed, err := zerolog.ParseLevel(envLevel); err == nil {
			level = parsed
		}
	}

	config := &logging.Config{
		Level:     level.String(),
		Format:    os.Getenv("LOG_FORMAT"),
		Output:    os.Getenv("LOG_OUTPUT"),
		AddCaller: level <= zerolog.DebugLevel,
	}
	if config.Format == "" {
		config.Format = "auto"
	}
	if config.Output == "" {
		config.Output = "stderr"
	}

	logging.Configure(config)
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envFile); err == nil && verbose {
			fmt.Fprintf(os.Stderr, "Loaded %s\n", envFile)
		}
	}
}

// loadCatalog loads the catalog per the global flags.
func loadCatalog() (*catalog.Catalog, error) {
	if path := viper.GetString("catalog"); path != "" {
		logging.Debug().Str("path", path).Msg("Loading catalog from file")
		return catalog.New(catalog.WithFile(path))
	}
	return catalog.New(catalog.WithEmbedded())
}

// environmentID resolves the selected environment from flag, config or env var.
func environmentID() (catalog.EnvironmentID, error) {
	name := viper.GetString("env")
	if name == "" {
		return "", fmt.Errorf("no environment selected: pass --env or set DATACATALOG_ENV")
	}
	return catalog.EnvironmentID(name), nil
}

// formatter returns the output formatter for the selected format.
func formatter() output.Formatter {
	return output.NewFormatter(output.Format(outputFlag))
}
