package cli

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configBaseName   = "nucleo"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "NUCLEO"

	configFlagName     = "config"
	formatFlagName     = "format"
	noHeaderFlagName   = "no-header"
	workersFlagName    = "workers"
	enzymeFileFlagName = "enzyme-file"
	logFileFlagName    = "log-file"
	verboseFlagName    = "verbose"

	formatConfigKey     = "output.format"
	noHeaderConfigKey   = "output.no_header"
	workersConfigKey    = "scan.workers"
	enzymeFileConfigKey = "enzymes.file"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultFormat        = "text"
	defaultWorkers       = 0
	defaultLogFilename   = ".nucleo.log"
	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// newConfig returns a viper instance with defaults and env binding. The
// config file itself is read later, once --config is known.
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetConfigName(configBaseName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configFolderPath)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(formatConfigKey, defaultFormat)
	v.SetDefault(noHeaderConfigKey, false)
	v.SetDefault(workersConfigKey, defaultWorkers)
	v.SetDefault(enzymeFileConfigKey, "")

	v.SetDefault(logFilenameKey, defaultLogFilename)
	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logVerboseKey, false)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)
	return v
}

// readConfig loads path if given, else nucleo.yaml from the working
// directory when present. A missing default file is not an error.
func readConfig(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		return v.ReadInConfig()
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
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

// newLogger builds a slog text logger over a rotating file.
//
// It logs at log.level (Info by default); log.verbose forces Debug.
func newLogger(v *viper.Viper) *slog.Logger {
	logPath := strings.TrimSpace(v.GetString(logFilenameKey))
	if logPath == "" {
		logPath = defaultLogFilename
	}

	logLevel := parseSlogLevel(v.GetString(logLevelKey), slog.LevelInfo)
	if v.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    v.GetInt(logMaxSizeKey),
		MaxBackups: v.GetInt(logMaxBackupsKey),
		MaxAge:     v.GetInt(logMaxAgeKey),
		Compress:   v.GetBool(logCompressKey),
	}

	return slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	}))
}
