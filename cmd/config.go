package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"scratchbook.dev/pkg/scratchbook/internal/adapter"
	"scratchbook.dev/pkg/scratchbook/internal/domain"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "scratchbook"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName  = "output"
	verboseFlagName = "verbose"
	logFileFlagName = "log-file"
	cellFlagName    = "cell"

	outputFormatKey = "output.format"

	stagingDirKey       = "staging.dir"
	workspaceRootKey    = "workspace.root"
	workspaceMarkersKey = "workspace.markers"

	compilerNodeKey          = "compiler.node"
	compilerTimeoutKey       = "compiler.timeout"
	compilerNoEmitOnErrorKey = "compiler.no_emit_on_error"
	compilerNoImplicitAnyKey = "compiler.no_implicit_any"
	compilerTargetKey        = "compiler.target"
	compilerModuleKey        = "compiler.module"

	historyPathKey = "history.path"

	watchDebounceKey  = "watch.debounce"
	watchBackupDirKey = "watch.backup_dir"

	defaultOutputFormat   = "text"
	defaultStagingDir     = ".scratchbook/staging"
	defaultCompilerNode   = "node"
	defaultHistoryPath    = ".scratchbook/history.db"
	defaultWatchDebounce  = domain.DefaultDebounce
	defaultCompileTimeout = adapter.DefaultCompilerTimeout

	envPrefix = "SCRATCHBOOK"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".scratchbook/scratchbook.log"
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

	setConfigDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func setConfigDefaults() {
	defaults := m.DefaultCompilerOptions()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFormatKey, defaultOutputFormat)

	viper.SetDefault(stagingDirKey, defaultStagingDir)
	viper.SetDefault(workspaceRootKey, "")
	viper.SetDefault(workspaceMarkersKey, adapter.DefaultWorkspaceMarkers)

	viper.SetDefault(compilerNodeKey, defaultCompilerNode)
	viper.SetDefault(compilerTimeoutKey, int64(defaultCompileTimeout.Seconds()))
	viper.SetDefault(compilerNoEmitOnErrorKey, defaults.NoEmitOnError)
	viper.SetDefault(compilerNoImplicitAnyKey, defaults.NoImplicitAny)
	viper.SetDefault(compilerTargetKey, defaults.Target)
	viper.SetDefault(compilerModuleKey, defaults.Module)

	viper.SetDefault(historyPathKey, defaultHistoryPath)

	viper.SetDefault(watchDebounceKey, defaultWatchDebounce.Milliseconds())
	viper.SetDefault(watchBackupDirKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

func compilerOptions() m.CompilerOptions {
	return m.CompilerOptions{
		NoEmitOnError: viper.GetBool(compilerNoEmitOnErrorKey),
		NoImplicitAny: viper.GetBool(compilerNoImplicitAnyKey),
		Target:        viper.GetString(compilerTargetKey),
		Module:        viper.GetString(compilerModuleKey),
	}
}

func compilerTimeout() time.Duration {
	return time.Duration(viper.GetInt64(compilerTimeoutKey)) * time.Second
}

func watchDebounce() time.Duration {
	return time.Duration(viper.GetInt64(watchDebounceKey)) * time.Millisecond
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
// Records always go to the rotating log file. In verbose mode they are also
// written to stderr at Debug level.
func configureLogger(logPath string, verbose bool, stderr io.Writer) {
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

	if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil && stderr != nil {
		_, _ = io.WriteString(stderr, "cannot create log directory: "+err.Error()+"\n")
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(logWriter, &slog.HandlerOptions{
			AddSource: true,
			Level:     logLevel,
		}),
	}

	if verbose && stderr != nil {
		handlers = append(handlers, slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	globalLogger = slog.New(slogmulti.Fanout(handlers...))
	slog.SetDefault(globalLogger)
}
