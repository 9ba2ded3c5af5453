// Package logger wraps logrus with context aware helpers.
package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/roguepikachu/smileline/pkg/ctxutil"
	"github.com/sirupsen/logrus"
)

// InitLogging configures the logger. It sets the log level from the LOG_LEVEL environment variable if present.
func InitLogging() {
	logrus.Info("....Configuring Logger....")
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "debug" // default if not set
	}
	setLogLevel(logLevel)
	logFormat := os.Getenv("LOG_FORMAT")
	if strings.ToLower(logFormat) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "trace":
		logrus.SetLevel(logrus.TraceLevel)
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	case "fatal":
		logrus.SetLevel(logrus.FatalLevel)
	case "panic":
		logrus.SetLevel(logrus.PanicLevel)
	default:
		logrus.Infof("NO/Invalid LOGGING_LEVEL is provided, defaulting logging level to DEBUG, provided loggingLevel=[%s]", level)
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.Infof("Setting logging level to %s", level)
}

// Sprintf formats like fmt.Sprintf but returns the format untouched when it is empty.
func Sprintf(format string, args ...any) string {
	if format == "" {
		return ""
	}
	return fmt.Sprintf(format, args...)
}

// With returns an entry carrying the given fields plus the request and client IDs found in ctx.
func With(ctx context.Context, fields map[string]any) *logrus.Entry {
	f := logrus.Fields{}
	for k, v := range fields {
		f[k] = v
	}
	if ctx != nil {
		if rid := ctxutil.RequestID(ctx); rid != "" {
			f["request_id"] = rid
		}
		if cid := ctxutil.ClientID(ctx); cid != "" {
			f["client_id"] = cid
		}
	}
	return logrus.WithFields(f)
}

// WithField is a shorthand for With with a single field.
func WithField(ctx context.Context, key string, value any) *logrus.Entry {
	return With(ctx, map[string]any{key: value})
}

func Info(ctx context.Context, msg string, args ...interface{}) {
	With(ctx, nil).Infof(msg, args...)
}

func Debug(ctx context.Context, msg string, args ...any) {
	With(ctx, nil).Debugf(msg, args...)
}

func Error(ctx context.Context, msg string, args ...any) {
	With(ctx, nil).Errorf(msg, args...)
}

func Trace(ctx context.Context, msg string, args ...any) {
	With(ctx, nil).Tracef(msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	With(ctx, nil).Warnf(msg, args...)
}

func Fatal(ctx context.Context, msg string, args ...any) {
	With(ctx, nil).Fatalf(msg, args...)
}
