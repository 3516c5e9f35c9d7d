package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/the-Alberich/code-test-ba/models"
	"github.com/the-Alberich/code-test-ba/reqctx"
)

// maxCapturedBody bounds how much of a request body is kept for logging
const maxCapturedBody = 64 << 10

// CaptureRequest stores a snapshot of every mutating request in its context
// so handlers can log full request context when an operation fails.
// The body is buffered and replaced, so downstream handlers still read it.
// Mount it behind LimitBody: a body over the limit is answered with 413 here.
func CaptureRequest(ips *IPResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := &reqctx.RequestInfo{
				Method:    r.Method,
				Path:      r.URL.Path,
				UserAgent: r.UserAgent(),
				IPAddress: ips.ClientIP(r),
			}

			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodDelete:
				body, err := bufferBody(r)
				if IsBodyTooLarge(err) {
					writeJSON(w, http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: models.MsgBodyTooLarge})
					return
				}
				info.Body = body
			}

			next.ServeHTTP(w, r.WithContext(reqctx.SetRequestInfo(r.Context(), info)))
		})
	}
}

// bufferBody reads the request body, puts an identical reader back and
// returns the (possibly truncated) text for logging
func bufferBody(r *http.Request) (string, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return "", nil
	}

	data, err := io.ReadAll(r.Body)
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	if len(data) > maxCapturedBody {
		data = data[:maxCapturedBody]
	}
	return string(data), nil
}
