package config

import (
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/urfave/cli/v3"
)

// githubTokenPattern matches GitHub personal, OAuth, user, server and refresh tokens
var githubTokenPattern = regexp.MustCompile(`(gh[pousr]_[A-Za-z0-9]{36,}|github_pat_[A-Za-z0-9_]{22,})`)

// Logger holds logger configuration
type Logger struct {
	Level string
	JSON  bool

	// writer overrides os.Stderr, used in tests
	writer io.Writer
}

// Flags returns CLI flags for logger configuration
func (c *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "warn",
			Destination: &c.Level,
			Sources:     cli.EnvVars("RUNINFO_LOG_LEVEL"),
		},
		&cli.BoolFlag{
			Name:        "log-json",
			Usage:       "Output logs in JSON format",
			Value:       false,
			Destination: &c.JSON,
			Sources:     cli.EnvVars("RUNINFO_LOG_JSON"),
		},
	}
}

// SetWriter sets the destination of log output
func (c *Logger) SetWriter(w io.Writer) {
	c.writer = w
}

// Configure configures and returns a logger. Logs are written to stderr
// so that stdout only carries the report.
func (c *Logger) Configure() (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, goerr.New("invalid log level", goerr.V("level", c.Level))
	}

	w := c.writer
	if w == nil {
		w = os.Stderr
	}

	filter := masq.New(
		masq.WithRegex(githubTokenPattern),
		masq.WithFieldName("token"),
		masq.WithFieldName("secret"),
	)

	var handler slog.Handler
	if c.JSON {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: filter,
		})
	} else {
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithReplaceAttr(filter),
		)
	}

	return slog.New(handler), nil
}
