package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gendx/horcrux/internal/cli/runner"
	"github.com/gendx/horcrux/internal/config"
	horerrs "github.com/gendx/horcrux/internal/errors"
	"github.com/gendx/horcrux/internal/logging"
)

// builder constructs command runners backed by the package-level config
// state, which cobra.OnInitialize populates before any RunE fires.
var builder = runner.NewBuilder(func() (*config.Config, error) {
	return cfg, cfgErr
})

var (
	// Version is set at build time.
	Version = "0.1.0"

	cfg    *config.Config
	cfgErr error
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "horcrux",
	Short: "Shamir's Secret Sharing over GF(2^n)",
	Long: `horcrux splits a secret byte string into N shares over GF(2^n),
any T of which reconstruct it and any T-1 of which reveal nothing.`,
}

// Execute runs the CLI. Command errors are sanitized before they reach
// the terminal, since a split/reconstruct failure can otherwise echo a
// share's hex material or a --shares file path verbatim.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		PrintError("%s", horerrs.SanitizeError(err))
		os.Exit(1)
	}
}

// SetVersion sets the version string.
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

func init() {
	cobra.OnInitialize(initLogging, initConfig)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initLogging() {
	logging.InitDefault()
}

func initConfig() {
	cfg, cfgErr = config.Load("")
}

// Config returns the loaded CLI default-settings config. It falls back to
// config.Default() when no config file is present, and is nil when the
// config file exists but could not be read or parsed (see ConfigErr).
func Config() *config.Config {
	return cfg
}

// ConfigErr returns any error encountered loading the config file.
func ConfigErr() error {
	return cfgErr
}
