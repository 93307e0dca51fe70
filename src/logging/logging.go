// Package logging configures the CLI's rotating slog logger.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/nowledge/deep-mem/src/paths"
)

var (
	loggerOnce sync.Once

	// level is shared with the handler so a config file loaded after
	// the first Init call still takes effect.
	level = new(slog.LevelVar)
)

// Config holds logging configuration
type Config struct {
	Level    string // debug, info, warn, error (default: warn)
	File     string // Log file path (empty = {log_dir}/cli.log)
	MaxSize  int    // Max log file size in MB (default: 10)
	MaxFiles int    // Max log files to keep (default: 5)
}

// GetConfig returns logging configuration from viper
func GetConfig() Config {
	return Config{
		Level:    viper.GetString("logging.level"),
		File:     viper.GetString("logging.file"),
		MaxSize:  viper.GetInt("logging.max_size"),
		MaxFiles: viper.GetInt("logging.max_files"),
	}
}

// Init initializes the CLI logger with rotation and installs it as the
// slog default. The handler is built once; the level is re-read from
// viper on every call, so Init runs again after the config file loads.
func Init() error {
	cfg := GetConfig()

	var initErr error
	loggerOnce.Do(func() {
		logPath := cfg.File
		if logPath == "" {
			logPath = paths.LogFile()
		}

		// Expand ~ to home directory
		if len(logPath) > 0 && logPath[0] == '~' {
			home, _ := os.UserHomeDir()
			logPath = filepath.Join(home, logPath[1:])
		}

		if err := paths.EnsureFile(logPath); err != nil {
			initErr = fmt.Errorf("create log dir: %w", err)
			return
		}

		maxSize := cfg.MaxSize
		if maxSize == 0 {
			maxSize = 10 // MB
		}
		maxFiles := cfg.MaxFiles
		if maxFiles == 0 {
			maxFiles = 5
		}

		rotatingWriter := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    maxSize,
			MaxBackups: maxFiles,
			MaxAge:     30, // days
			Compress:   true,
		}

		handler := slog.NewJSONHandler(rotatingWriter, &slog.HandlerOptions{
			Level: level,
		})
		slog.SetDefault(slog.New(handler))
	})
	if initErr != nil {
		return initErr
	}

	level.Set(ParseLevel(cfg.Level))
	return nil
}

// ParseLevel maps a config string to a slog level, defaulting to warn.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
