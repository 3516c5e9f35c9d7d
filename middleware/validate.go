package middleware

import (
	"log/slog"
	"net/http"

	"github.com/the-Alberich/code-test-ba/models"
	"github.com/the-Alberich/code-test-ba/reqctx"
)

// ValidateLogBody decodes a JSON log entry body and rejects it with 400 if it
// fails validation, or 413 if it is over the body limit. Valid forms are
// handed to the next handler via reqctx.
func ValidateLogBody(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			form, err := models.DecodeLogEntryForm(r.Body)
			if err != nil {
				if IsBodyTooLarge(err) {
					logger.WarnContext(r.Context(), "Validation failed", "reason", "body too large")
					writeJSON(w, http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: models.MsgBodyTooLarge})
					return
				}
				logger.WarnContext(r.Context(), "Validation failed", "reason", "malformed body", "error", err)
				writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: models.MsgInvalidInput})
				return
			}

			if fieldErrors := form.Validate(); fieldErrors.HasErrors() {
				details := fieldErrors.Messages()
				logger.WarnContext(r.Context(), "Validation failed", "errors", details)
				writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
					Error:   models.MsgInvalidInput,
					Details: details,
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(reqctx.SetLogForm(r.Context(), form)))
		})
	}
}
