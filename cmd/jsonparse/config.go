package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	envPrefix      = "JSONPARSE"
	configBaseName = ".jsonparse"

	pathFlagName     = "path"
	yamlFlagName     = "yaml"
	noColorFlagName  = "no-color"
	logFileFlagName  = "log-file"
	logLevelFlagName = "log-level"
	parallelFlagName = "parallel"
	typeFlagName     = "type"

	pathKey          = "path"
	yamlKey          = "yaml"
	noColorKey       = "no-color"
	parallelKey      = "run.parallel"
	typeKey          = "get.type"
	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultParallel = 4
	defaultLogLevel = "info"

	defaultLogMaxSize    = 10 // megabytes
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28 // days
	defaultLogCompress   = true
)

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(pathKey, "")
	viper.SetDefault(yamlKey, false)
	viper.SetDefault(noColorKey, false)
	viper.SetDefault(parallelKey, defaultParallel)
	viper.SetDefault(typeKey, typeRaw)

	viper.SetDefault(logFilenameKey, "")
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "jsonparse: ignoring config file:", err)
		}
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger. Logs go to stderr,
// or to a size-rotated file when log.filename is set.
func configureLogger() {
	level := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)

	var logWriter io.Writer = os.Stderr
	if path := strings.TrimSpace(viper.GetString(logFilenameKey)); path != "" {
		logWriter = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		}
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
