package runner

import (
	"fmt"

	"github.com/gendx/horcrux/internal/config"
)

// CommandContext provides shared dependencies to command handlers: the
// loaded CLI default-settings config (or the error from loading it).
type CommandContext struct {
	Config    *config.Config
	ConfigErr error
}

// NewContext creates a new CommandContext with the given config.
func NewContext(cfg *config.Config, cfgErr error) *CommandContext {
	return &CommandContext{Config: cfg, ConfigErr: cfgErr}
}

// SaveConfig saves the configuration with standardized error wrapping.
func (c *CommandContext) SaveConfig() error {
	if c.Config == nil {
		return ErrNoConfig
	}
	if err := c.Config.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// HasConfig returns true if config is loaded successfully.
func (c *CommandContext) HasConfig() bool {
	return c.Config != nil && c.ConfigErr == nil
}
