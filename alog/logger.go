// Package alog builds the structured loggers of the service on top of log/slog.
package alog

import (
	"context"
	"log/slog"
)

// Logger interface is a subset of slog.Logger, with the aim to:
//  1. encourage the use of the methods offering context.Context, so that tracing information can be correlated.
//  2. encourage the use of the levels `DEBUG` and `INFO` over others, but without preventing them, see:
//     https://dave.cheney.net/2015/11/05/lets-talk-about-logging
type Logger interface {
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
}

var _ Logger = (*slog.Logger)(nil)

const (
	// LevelInfo is used to see what is going on inside the framework parts of the service.
	LevelInfo = slog.Level(-8)

	// LevelDebug is used by developers of the service, if you really want to know what is going on.
	LevelDebug = slog.Level(-12)
)

// MapLogLevelsToName replaces the default name of a custom log level with a speaking name.
// Use it as slog.HandlerOptions.ReplaceAttr.
func MapLogLevelsToName(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key == slog.LevelKey {
		level, _ := attr.Value.Any().(slog.Level)

		levelLabel, exists := getLevelNames()[level]
		if !exists {
			levelLabel = level.String()
		}

		attr.Value = slog.StringValue(levelLabel)
	}

	return attr
}

// ParseLevel maps a configured level name to a slog.Level.
// Unknown names fall back to slog.LevelInfo.
func ParseLevel(name string) slog.Level {
	for level, levelName := range getLevelNames() {
		if levelName == name {
			return level
		}
	}

	var level slog.Level

	err := level.UnmarshalText([]byte(name))
	if err != nil {
		return slog.LevelInfo
	}

	return level
}

func getLevelNames() map[slog.Level]string {
	return map[slog.Level]string{
		LevelInfo:  "SERVICE:INFO",
		LevelDebug: "SERVICE:DEBUG",
	}
}
