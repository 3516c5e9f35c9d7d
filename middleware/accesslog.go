package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// AccessLog writes one structured record per request through logger.
// Mount it after RequestID and before Recoverer so panics are logged too.
func AccessLog(logger *slog.Logger, ips *IPResolver) func(http.Handler) http.Handler {
	return chimiddleware.RequestLogger(&accessLogFormatter{
		logger: logger.With("component", "http"),
		ips:    ips,
	})
}

type accessLogFormatter struct {
	logger *slog.Logger
	ips    *IPResolver
}

func (f *accessLogFormatter) NewLogEntry(r *http.Request) chimiddleware.LogEntry {
	return &accessLogEntry{logger: f.logger.With(
		"request_id", chimiddleware.GetReqID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"client_ip", f.ips.ClientIP(r),
	)}
}

type accessLogEntry struct {
	logger *slog.Logger
}

func (e *accessLogEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	if status == 0 {
		status = http.StatusOK
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	e.logger.Log(context.Background(), level, "Request completed",
		"status", status,
		"bytes", bytes,
		"duration_ms", float64(elapsed.Microseconds())/1000,
	)
}

func (e *accessLogEntry) Panic(v interface{}, stack []byte) {
	e.logger.Error("Request panicked", "panic", fmt.Sprint(v), "stack", string(stack))
}
