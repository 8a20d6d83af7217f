package commands

import (
	"io"

	"go.uber.org/zap"

	"github.com/jakechorley/room-ranker/internal/config"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Logger *zap.Logger
	Out    io.Writer

	// ConfigPath is an explicit config file. Empty searches the default locations.
	ConfigPath string
}

// LoadConfig loads the configuration for commands that need it
func (app *AppContext) LoadConfig() (*config.Config, error) {
	if app.ConfigPath != "" {
		return config.LoadFromPath(app.ConfigPath)
	}
	return config.Load()
}
