package flags

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"contentplan/internal/config"

	libnats "github.com/nats-io/nats.go"
	"github.com/urfave/cli/v3"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

var LogLevel = &cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "The level of the logs",
	Value:   "warn",
	Validator: func(value string) error {
		if !slices.Contains(validLogLevels, value) {
			return fmt.Errorf("invalid log level: %s, allowed values are: %s", value, validLogLevels)
		}
		return nil
	},
	Sources: cli.EnvVars("LOG_LEVEL"),
}

var DataDir = &cli.StringFlag{
	Name:    "data-dir",
	Aliases: []string{"d"},
	Usage:   "Directory the post collection is stored in",
	Value:   defaultDataDir(),
	Sources: cli.EnvVars("CONTENTPLAN_DATA_DIR"),
}

var Backend = &cli.StringFlag{
	Name:  "backend",
	Usage: "Key-value backend to store posts in",
	Value: config.BackendFile,
	Validator: func(value string) error {
		if value != config.BackendFile && value != config.BackendNATS {
			return fmt.Errorf("invalid backend: %s, allowed values are: [%s %s]", value, config.BackendFile, config.BackendNATS)
		}
		return nil
	},
	Sources: cli.EnvVars("CONTENTPLAN_BACKEND"),
}

var NATSUrl = &cli.StringFlag{
	Name:    "nats-url",
	Usage:   "The URL of the NATS server, used with --backend nats",
	Value:   libnats.DefaultURL,
	Sources: cli.EnvVars("NATS_URL"),
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".contentplan")
	}
	return "contentplan-data"
}
