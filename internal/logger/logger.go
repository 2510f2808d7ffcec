package logger

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const RequestIDKey ctxKey = "requestId"

const slowThreshold = 500 * time.Millisecond

// New returns a text logger at the given level; unknown levels mean info.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

func ContextWithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func IDFrom(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// For returns an entry of log tagged with the request id carried by ctx.
func For(ctx context.Context, log logrus.FieldLogger) logrus.FieldLogger {
	id := IDFrom(ctx)
	if id == "" {
		return log
	}
	return log.WithField("request_id", id)
}

// Track logs msg with the elapsed time when the returned func is called.
func Track(ctx context.Context, log logrus.FieldLogger, msg string) func() {
	start := time.Now()
	return func() {
		dur := time.Since(start)
		entry := For(ctx, log).WithField("duration", dur.String())

		if dur > slowThreshold {
			entry.Warnf("%s completed (SLOW)", msg)
		} else {
			entry.Infof("%s completed", msg)
		}
	}
}
