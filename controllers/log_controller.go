package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/the-Alberich/code-test-ba/models"
	"github.com/the-Alberich/code-test-ba/reqctx"
	"github.com/the-Alberich/code-test-ba/services"
)

// Response messages
const (
	MsgLogNotFound     = "Log not found."
	MsgLogDeleted      = "Log deleted."
	MsgFieldsRequired  = "All fields are required."
	MsgInvalidDate     = "Invalid date format."
	MsgRetrieveFailure = "Failed to retrieve logs."
	MsgCreateFailure   = "Failed to create log."
	MsgUpdateFailure   = "Failed to update log."
	MsgDeleteFailure   = "Failed to delete log."
)

// LogController handles log entry requests
type LogController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewLogController creates a new log controller
func NewLogController(services *services.Services, logger *slog.Logger) *LogController {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogController{
		services: services,
		logger:   logger.With("component", "logController"),
	}
}

// Index handles GET /logs
func (c *LogController) Index(w http.ResponseWriter, r *http.Request) {
	entries, err := c.services.Logs.ListLogs(r.Context())
	if err != nil {
		c.logError(r, "getLogs", err)
		renderError(w, http.StatusInternalServerError, MsgRetrieveFailure)
		return
	}

	renderJSON(w, entries)
}

// Create handles POST /logs
func (c *LogController) Create(w http.ResponseWriter, r *http.Request) {
	form, ok := c.logForm(w, r)
	if !ok {
		return
	}

	entry, err := c.services.Logs.CreateLog(r.Context(), form)
	if err != nil {
		if c.renderClientError(w, err) {
			return
		}
		c.logError(r, "createLog", err)
		renderError(w, http.StatusInternalServerError, MsgCreateFailure)
		return
	}

	renderJSONWithStatus(w, http.StatusCreated, entry)
}

// Update handles PUT /logs/{id}
func (c *LogController) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	form, ok := c.logForm(w, r)
	if !ok {
		return
	}

	entry, err := c.services.Logs.UpdateLog(r.Context(), id, form)
	if err != nil {
		if c.renderClientError(w, err) {
			return
		}
		c.logError(r, "updateLog", err)
		renderError(w, http.StatusInternalServerError, MsgUpdateFailure)
		return
	}

	renderJSON(w, entry)
}

// Delete handles DELETE /logs/{id}
func (c *LogController) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.services.Logs.DeleteLog(r.Context(), id); err != nil {
		if c.renderClientError(w, err) {
			return
		}
		c.logError(r, "deleteLog", err)
		renderError(w, http.StatusInternalServerError, MsgDeleteFailure)
		return
	}

	renderJSON(w, models.MessageResponse{Message: MsgLogDeleted})
}

// logForm returns the body validated by the boundary middleware, or decodes
// it directly when the route is mounted without that middleware
func (c *LogController) logForm(w http.ResponseWriter, r *http.Request) (*models.LogEntryForm, bool) {
	if form, ok := reqctx.GetLogForm(r.Context()); ok {
		return form, true
	}

	form, err := models.DecodeLogEntryForm(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.logger.WarnContext(r.Context(), "Request body too large", "path", r.URL.Path, "limit", tooLarge.Limit)
			renderError(w, http.StatusRequestEntityTooLarge, models.MsgBodyTooLarge)
			return nil, false
		}
		c.logger.WarnContext(r.Context(), "Malformed request body", "path", r.URL.Path, "error", err)
		renderError(w, http.StatusBadRequest, models.MsgInvalidInput)
		return nil, false
	}
	return form, true
}

// renderClientError writes the response for validation and not-found errors
// and reports whether err was one of them
func (c *LogController) renderClientError(w http.ResponseWriter, err error) bool {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		message := MsgInvalidDate
		if validationErr.Fields.HasMissing() {
			message = MsgFieldsRequired
		}
		renderJSONWithStatus(w, http.StatusBadRequest, models.ErrorResponse{
			Error:   message,
			Details: validationErr.Fields.Messages(),
		})
		return true
	case errors.Is(err, services.ErrLogNotFound):
		renderError(w, http.StatusNotFound, MsgLogNotFound)
		return true
	default:
		return false
	}
}

// logError records an unexpected fault with the full request context
func (c *LogController) logError(r *http.Request, operation string, err error) {
	attrs := []any{
		"operation", operation,
		"path", r.URL.Path,
		"method", r.Method,
		"params", urlParams(r),
		"error", err.Error(),
	}
	if info := reqctx.GetRequestInfo(r.Context()); info != nil {
		attrs = append(attrs, "body", info.Body, "ip", info.IPAddress)
	}

	c.logger.ErrorContext(r.Context(), "Operation failed", attrs...)
}

// urlParams collects the chi route parameters of the request
func urlParams(r *http.Request) map[string]string {
	params := map[string]string{}
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return params
	}
	for i, key := range rctx.URLParams.Keys {
		if i < len(rctx.URLParams.Values) && key != "*" {
			params[key] = rctx.URLParams.Values[i]
		}
	}
	return params
}
