// Package logging builds the process logger. Logs always go to the writer
// passed in (stderr for the CLI) so stdout carries only the report.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"fastacheck/internal/config"
)

// EnvLogLevel is consulted when the config does not set a level.
const EnvLogLevel = "FASTACHECK_LOG_LEVEL"

// New returns a named logger. The level comes from cfg, then EnvLogLevel,
// then defaults to INFO.
func New(cfg config.Logger, name string, w io.Writer) hclog.Logger {
	var logLevel hclog.Level

	if cfg.Level != "" {
		logLevel = GetLogLevel(cfg.Level)
	} else {
		logLevel = GetLogLevel(os.Getenv(EnvLogLevel))
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:        name,
		DisableTime: true,
		Output:      w,
		Level:       logLevel,
		JSONFormat:  cfg.JSON,
	})
}

func GetLogLevel(levelStr string) hclog.Level {
	switch strings.ToUpper(levelStr) {
	case "TRACE":
		return hclog.Trace
	case "DEBUG":
		return hclog.Debug
	case "INFO":
		return hclog.Info
	case "WARN":
		return hclog.Warn
	case "ERROR":
		return hclog.Error
	case "OFF":
		return hclog.Off
	default:
		return hclog.Info
	}
}
