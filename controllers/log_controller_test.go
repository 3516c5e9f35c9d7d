package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-Alberich/code-test-ba/middleware"
	"github.com/the-Alberich/code-test-ba/models"
	"github.com/the-Alberich/code-test-ba/services"
)

// stubLogService lets each test script the service outcome
type stubLogService struct {
	list   func(ctx context.Context) ([]models.LogEntry, error)
	create func(ctx context.Context, form *models.LogEntryForm) (*models.LogEntry, error)
	update func(ctx context.Context, id string, form *models.LogEntryForm) (*models.LogEntry, error)
	delete func(ctx context.Context, id string) error
}

func (s *stubLogService) ListLogs(ctx context.Context) ([]models.LogEntry, error) {
	return s.list(ctx)
}

func (s *stubLogService) CreateLog(ctx context.Context, form *models.LogEntryForm) (*models.LogEntry, error) {
	return s.create(ctx, form)
}

func (s *stubLogService) UpdateLog(ctx context.Context, id string, form *models.LogEntryForm) (*models.LogEntry, error) {
	return s.update(ctx, id, form)
}

func (s *stubLogService) DeleteLog(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

const validBody = `{"userName":"Alice","description":"Test event","date":"2024-01-01T10:00:00Z","location":"Test City"}`

// newTestRouter mounts the log routes without boundary validation so the
// controller's own handling of service errors is exercised
func newTestRouter(svc services.LogService, logs *bytes.Buffer) http.Handler {
	logger := slog.New(slog.NewJSONHandler(logs, nil))
	ctrl := NewLogController(&services.Services{Logs: svc}, logger)

	r := chi.NewRouter()
	r.Use(middleware.CaptureRequest(nil))
	r.Get("/logs", ctrl.Index)
	r.Post("/logs", ctrl.Create)
	r.Put("/logs/{id}", ctrl.Update)
	r.Delete("/logs/{id}", ctrl.Delete)
	return r
}

func doRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestIndex(t *testing.T) {
	svc := &stubLogService{list: func(ctx context.Context) ([]models.LogEntry, error) {
		return []models.LogEntry{{ID: "1", UserName: "Alice", Description: "d", Date: "2024-01-01", Location: "l"}}, nil
	}}

	rec := doRequest(newTestRouter(svc, &bytes.Buffer{}), http.MethodGet, "/logs", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"id":"1","userName":"Alice","description":"d","date":"2024-01-01","location":"l"}]`, rec.Body.String())
}

func TestIndex_EmptyIsArray(t *testing.T) {
	svc := &stubLogService{list: func(ctx context.Context) ([]models.LogEntry, error) {
		return []models.LogEntry{}, nil
	}}

	rec := doRequest(newTestRouter(svc, &bytes.Buffer{}), http.MethodGet, "/logs", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestIndex_InternalError(t *testing.T) {
	svc := &stubLogService{list: func(ctx context.Context) ([]models.LogEntry, error) {
		return nil, errors.New("no such table: logs")
	}}

	rec := doRequest(newTestRouter(svc, &bytes.Buffer{}), http.MethodGet, "/logs", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, MsgRetrieveFailure, decodeError(t, rec).Error)
	assert.NotContains(t, rec.Body.String(), "no such table", "internal details must not leak")
}

func TestCreate(t *testing.T) {
	var received *models.LogEntryForm
	svc := &stubLogService{create: func(ctx context.Context, form *models.LogEntryForm) (*models.LogEntry, error) {
		received = form
		return form.ToEntry("new-id"), nil
	}}

	rec := doRequest(newTestRouter(svc, &bytes.Buffer{}), http.MethodPost, "/logs", validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, received)
	assert.Equal(t, "Test City", received.Location)

	var entry models.LogEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, "new-id", entry.ID)
	assert.Equal(t, "Alice", entry.UserName)
}

func TestCreate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		fields  models.FieldErrors
		wantMsg string
	}{
		{"missing field", models.FieldErrors{{Field: "location", Message: "location is required", Missing: true}}, MsgFieldsRequired},
		{"malformed date", models.FieldErrors{{Field: "date", Message: models.MsgInvalidDate}}, MsgInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubLogService{create: func(ctx context.Context, form *models.LogEntryForm) (*models.LogEntry, error) {
				return nil, &services.ValidationError{Fields: tt.fields}
			}}

			rec := doRequest(newTestRouter(svc, &bytes.Buffer{}), http.MethodPost, "/logs", validBody)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tt.wantMsg, resp.Error)
			assert.Equal(t, tt.fields.Messages(), resp.Details)
		})
	}
}

func TestCreate_MalformedBody(t *testing.T) {
	svc := &stubLogService{}

	rec := doRequest(newTestRouter(svc, &bytes.Buffer{}), http.MethodPost, "/logs", `{"userName":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, models.MsgInvalidInput, decodeError(t, rec).Error)
}

func TestCreate_TrailingDataRejected(t *testing.T) {
	svc := &stubLogService{}

	rec := doRequest(newTestRouter(svc, &bytes.Buffer{}), http.MethodPost, "/logs", validBody+" trailing-garbage")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, models.MsgInvalidInput, decodeError(t, rec).Error)
}

func TestCreate_BodyTooLarge(t *testing.T) {
	svc := &stubLogService{}
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	ctrl := NewLogController(&services.Services{Logs: svc}, logger)

	r := chi.NewRouter()
	r.Use(middleware.LimitBody(64))
	r.Post("/logs", ctrl.Create)

	req := httptest.NewRequest(http.MethodPost, "/logs", strings.NewReader(validBody))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, models.MsgBodyTooLarge, decodeError(t, rec).Error)
}

func TestCreate_InternalErrorIsLoggedWithRequestContext(t *testing.T) {
	svc := &stubLogService{create: func(ctx context.Context, form *models.LogEntryForm) (*models.LogEntry, error) {
		return nil, errors.New("UNIQUE constraint failed: logs.id")
	}}
	var logs bytes.Buffer

	rec := doRequest(newTestRouter(svc, &logs), http.MethodPost, "/logs", validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, MsgCreateFailure, decodeError(t, rec).Error)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(logs.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "createLog", record["operation"])
	assert.Equal(t, "/logs", record["path"])
	assert.Equal(t, http.MethodPost, record["method"])
	assert.Equal(t, validBody, record["body"])
	assert.Contains(t, record["error"], "UNIQUE constraint failed")
}

func TestUpdate(t *testing.T) {
	var gotID string
	svc := &stubLogService{update: func(ctx context.Context, id string, form *models.LogEntryForm) (*models.LogEntry, error) {
		gotID = id
		return form.ToEntry(id), nil
	}}

	body := strings.Replace(validBody, "Test City", "Newtown", 1)
	rec := doRequest(newTestRouter(svc, &bytes.Buffer{}), http.MethodPut, "/logs/abc", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", gotID)

	var entry models.LogEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, "Newtown", entry.Location)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := &stubLogService{update: func(ctx context.Context, id string, form *models.LogEntryForm) (*models.LogEntry, error) {
		return nil, services.ErrLogNotFound
	}}

	rec := doRequest(newTestRouter(svc, &bytes.Buffer{}), http.MethodPut, "/logs/missing", validBody)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Log not found."}`, rec.Body.String())
}

func TestUpdate_InternalErrorLogsParams(t *testing.T) {
	svc := &stubLogService{update: func(ctx context.Context, id string, form *models.LogEntryForm) (*models.LogEntry, error) {
		return nil, errors.New("database is locked")
	}}
	var logs bytes.Buffer

	rec := doRequest(newTestRouter(svc, &logs), http.MethodPut, "/logs/abc", validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, MsgUpdateFailure, decodeError(t, rec).Error)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(logs.Bytes(), &record))
	assert.Equal(t, map[string]interface{}{"id": "abc"}, record["params"])
}

func TestDelete(t *testing.T) {
	svc := &stubLogService{delete: func(ctx context.Context, id string) error { return nil }}

	rec := doRequest(newTestRouter(svc, &bytes.Buffer{}), http.MethodDelete, "/logs/abc", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Log deleted."}`, rec.Body.String())
}

func TestDelete_NotFound(t *testing.T) {
	svc := &stubLogService{delete: func(ctx context.Context, id string) error {
		return services.ErrLogNotFound
	}}

	rec := doRequest(newTestRouter(svc, &bytes.Buffer{}), http.MethodDelete, "/logs/abc", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Log not found."}`, rec.Body.String())
}

func TestDelete_InternalError(t *testing.T) {
	svc := &stubLogService{delete: func(ctx context.Context, id string) error {
		return errors.New("disk I/O error")
	}}

	rec := doRequest(newTestRouter(svc, &bytes.Buffer{}), http.MethodDelete, "/logs/abc", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to delete log."}`, rec.Body.String())
}

type failingPinger struct{ err error }

func (p failingPinger) PingContext(ctx context.Context) error { return p.err }

func TestHealth(t *testing.T) {
	healthy := NewHealthController(failingPinger{})
	rec := httptest.NewRecorder()
	healthy.Index(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)

	unhealthy := NewHealthController(failingPinger{err: errors.New("closed")})
	rec = httptest.NewRecorder()
	unhealthy.Index(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"unhealthy"`)
}
