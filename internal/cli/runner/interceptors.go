package runner

import (
	"github.com/spf13/cobra"

	"github.com/gendx/horcrux/internal/logging"
)

// Interceptor is a function that wraps command execution, mirroring the
// Connect-RPC interceptor pattern adapted here for CLI commands.
type Interceptor func(ctx *CommandContext, cmd *cobra.Command, args []string, next func() error) error

// RequireConfig ensures the CLI default-settings configuration loaded
// without error before executing the command.
func RequireConfig() Interceptor {
	return func(ctx *CommandContext, cmd *cobra.Command, args []string, next func() error) error {
		if ctx.ConfigErr != nil {
			return ctx.ConfigErr
		}
		if ctx.Config == nil {
			return ErrNoConfig
		}
		return next()
	}
}

// WithLogging logs command execution at debug level, including failures.
// Never logs command arguments: split/reconstruct arguments can include
// share file paths and hex share material, which stays out of the log.
func WithLogging() Interceptor {
	return func(ctx *CommandContext, cmd *cobra.Command, args []string, next func() error) error {
		logging.Debug("CLI command", logging.String("cmd", cmd.Name()))
		err := next()
		if err != nil {
			logging.Debug("CLI error", logging.String("cmd", cmd.Name()), logging.Err(err))
		}
		return err
	}
}
