package middleware

import (
	"errors"
	"net/http"

	"github.com/the-Alberich/code-test-ba/models"
)

// LimitBody caps request bodies at limit bytes. A declared Content-Length
// over the cap is answered with 413 straight away; otherwise reads past the
// cap fail with *http.MaxBytesError and the reading handler answers 413.
func LimitBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit > 0 {
				if r.ContentLength > limit {
					writeJSON(w, http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: models.MsgBodyTooLarge})
					return
				}
				if r.Body != nil && r.Body != http.NoBody {
					r.Body = http.MaxBytesReader(w, r.Body, limit)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsBodyTooLarge reports whether err came from reading past a LimitBody cap
func IsBodyTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return errors.As(err, &tooLarge)
}
