package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Jafre0912/ReactNativeFORM/src/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Init installs a JSON slog logger as the process default and returns the
// writer it logs to, so other components (request logs) can share it.
func Init(cfg config.LoggerConfig) io.Writer {
	var w io.Writer = os.Stdout
	if cfg.ToFile && cfg.Filename != "" {
		w = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSizeMB, // megabytes
			MaxAge:     cfg.MaxAgeDays,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		})
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     LevelFromString(cfg.Level),
		AddSource: cfg.Level == "debug",
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
	return w
}

func LevelFromString(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
