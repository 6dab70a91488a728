// Package logger sets up the application logger: logrus with file rotation
// via lumberjack, configured from environment variables.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	appLogger *logrus.Logger
	initOnce  sync.Once
)

// Config holds logging configuration.
type Config struct {
	Level      string // logrus level name (LOG_LEVEL)
	Dir        string // directory for log files (LOG_DIR)
	MaxSizeMB  int    // rotate after this many megabytes (LOG_MAX_SIZE_MB)
	MaxBackups int    // rotated files to keep (LOG_MAX_BACKUPS)
	MaxAgeDays int    // days to keep rotated files (LOG_MAX_AGE_DAYS)
	ToStdout   bool   // also write to stdout (LOG_STDOUT)
}

// DefaultConfig reads configuration from environment variables with sane
// defaults for development.
func DefaultConfig() *Config {
	cfg := &Config{
		Level:      "info",
		Dir:        "logs",
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 30,
		ToStdout:   true,
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("LOG_DIR"); v != "" {
		cfg.Dir = v
	}
	if v := os.Getenv("LOG_MAX_SIZE_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxSizeMB = n
		}
	}
	if v := os.Getenv("LOG_STDOUT"); v != "" {
		cfg.ToStdout = v != "false" && v != "0"
	}
	return cfg
}

// Init initializes the logging system. A nil cfg uses DefaultConfig.
func Init(cfg *Config) error {
	var initErr error
	initOnce.Do(func() {
		if cfg == nil {
			cfg = DefaultConfig()
		}

		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			initErr = err
			return
		}

		level, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			level = logrus.InfoLevel
		}

		rotated := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, "app.log"),
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}

		var output io.Writer = rotated
		if cfg.ToStdout {
			output = io.MultiWriter(os.Stdout, rotated)
		}

		l := logrus.New()
		l.SetLevel(level)
		l.SetOutput(output)
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})

		appLogger = l
	})
	return initErr
}

// GetAppLogger returns the application logger. Falls back to the logrus
// standard logger when Init has not run (tests, tools).
func GetAppLogger() *logrus.Logger {
	if appLogger == nil {
		return logrus.StandardLogger()
	}
	return appLogger
}

// WithRequest returns an entry annotated with request identity fields.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields{
		"method":     c.Method(),
		"path":       c.Path(),
		"ip":         c.IP(),
		"request_id": c.GetRespHeader("X-Request-ID"),
	})
}
