package reqctx

import (
	"context"

	"github.com/the-Alberich/code-test-ba/models"
)

// Context key type
type contextKey string

const requestInfoKey contextKey = "request_info"
const logFormKey contextKey = "log_form"

// RequestInfo is a snapshot of the incoming request kept for fault logging
type RequestInfo struct {
	Method    string
	Path      string
	Body      string
	IPAddress string
	UserAgent string
}

// SetRequestInfo adds the request snapshot to the context
func SetRequestInfo(ctx context.Context, info *RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey, info)
}

// GetRequestInfo retrieves the request snapshot, or nil if none was captured
func GetRequestInfo(ctx context.Context) *RequestInfo {
	info, _ := ctx.Value(requestInfoKey).(*RequestInfo)
	return info
}

// SetLogForm adds a decoded and validated log entry body to the context
func SetLogForm(ctx context.Context, form *models.LogEntryForm) context.Context {
	return context.WithValue(ctx, logFormKey, form)
}

// GetLogForm retrieves the log entry body decoded at the boundary
func GetLogForm(ctx context.Context) (*models.LogEntryForm, bool) {
	form, ok := ctx.Value(logFormKey).(*models.LogEntryForm)
	return form, ok && form != nil
}
