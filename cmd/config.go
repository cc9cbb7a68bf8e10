package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/TechnoBlogger14o3/AlgoLab/internal/adapter"
	"github.com/TechnoBlogger14o3/AlgoLab/internal/domain"
	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "algolab"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	speedFlagName     = "speed"
	sizeFlagName      = "size"
	arrayTypeFlagName = "array-type"
	targetFlagName    = "target"
	arrayFlagName     = "array"
	caseFlagName      = "case"
	nodesFlagName     = "nodes"
	shapeFlagName     = "shape"
	startFlagName     = "start"
	kindFlagName      = "kind"
	verboseFlagName   = "verbose"

	speedConfigKey           = "run.speed_ms"
	sizeConfigKey            = "run.size"
	arrayTypeConfigKey       = "run.array_type"
	targetConfigKey          = "run.target"
	seedConfigKey            = "run.seed"
	graphNodesConfigKey      = "graph.nodes"
	graphShapeConfigKey      = "graph.shape"
	practiceTimeoutConfigKey = "practice.timeout"
	practiceKindConfigKey    = "practice.kind"

	defaultSpeedMs         = int(domain.DefaultSpeed / time.Millisecond)
	defaultSize            = domain.DefaultArraySize
	defaultArrayType       = string(m.ArrayRandom)
	defaultGraphNodes      = domain.DefaultGraphNodes
	defaultGraphShape      = string(m.GraphRandom)
	defaultPracticeTimeout = adapter.DefaultScriptTimeout
	defaultPracticeKind    = string(m.KindSort)

	envPrefix = "ALGOLAB"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".algolab.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(speedConfigKey, defaultSpeedMs)
	viper.SetDefault(sizeConfigKey, defaultSize)
	viper.SetDefault(arrayTypeConfigKey, defaultArrayType)
	viper.SetDefault(targetConfigKey, "")
	viper.SetDefault(seedConfigKey, 0)
	viper.SetDefault(graphNodesConfigKey, defaultGraphNodes)
	viper.SetDefault(graphShapeConfigKey, defaultGraphShape)
	viper.SetDefault(practiceTimeoutConfigKey, defaultPracticeTimeout.String())
	viper.SetDefault(practiceKindConfigKey, defaultPracticeKind)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// speedFromConfig returns the tick period; zero keeps the stepper default.
func speedFromConfig() time.Duration {
	return time.Duration(viper.GetInt(speedConfigKey)) * time.Millisecond
}

// targetFromConfig reads the optional search target. An empty value means
// the target is picked from the input.
func targetFromConfig() (*int, error) {
	raw := strings.TrimSpace(viper.GetString(targetConfigKey))
	if raw == "" {
		return nil, nil
	}

	target, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", targetFlagName, raw, err)
	}

	return &target, nil
}

// parseInts parses a comma separated list such as "5,3,8".
func parseInts(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))

	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", arrayFlagName, part, err)
		}

		values = append(values, v)
	}

	return values, nil
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

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
