package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/the-Alberich/code-test-ba/metrics"
	"github.com/the-Alberich/code-test-ba/models"
	"github.com/the-Alberich/code-test-ba/repositories"
)

// ErrLogNotFound is returned when an operation addresses an id that is not stored
var ErrLogNotFound = repositories.ErrLogNotFound

// ValidationError reports a candidate log entry that failed field validation
type ValidationError struct {
	Fields models.FieldErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		parts = append(parts, fe.Message)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

// Operation names used in logs and metrics
const (
	OpList   = "list"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// LogService interface defines log entry business logic
type LogService interface {
	ListLogs(ctx context.Context) ([]models.LogEntry, error)
	CreateLog(ctx context.Context, form *models.LogEntryForm) (*models.LogEntry, error)
	UpdateLog(ctx context.Context, id string, form *models.LogEntryForm) (*models.LogEntry, error)
	DeleteLog(ctx context.Context, id string) error
}

// IDGenerator mints identifiers for new log entries
type IDGenerator func() string

// logService implements LogService interface
type logService struct {
	logRepo repositories.LogRepository
	newID   IDGenerator
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// LogServiceOption customizes a log service
type LogServiceOption func(*logService)

// WithIDGenerator replaces the random UUID generator
func WithIDGenerator(gen IDGenerator) LogServiceOption {
	return func(s *logService) {
		s.newID = gen
	}
}

// WithMetrics records operation outcomes in m
func WithMetrics(m *metrics.Metrics) LogServiceOption {
	return func(s *logService) {
		s.metrics = m
	}
}

// NewLogService creates a new log service
func NewLogService(logRepo repositories.LogRepository, logger *slog.Logger, opts ...LogServiceOption) LogService {
	if logger == nil {
		logger = slog.Default()
	}

	s := &logService{
		logRepo: logRepo,
		newID:   uuid.NewString,
		logger:  logger.With("component", "logService"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListLogs retrieves all log entries ordered by date, newest first
func (s *logService) ListLogs(ctx context.Context) ([]models.LogEntry, error) {
	entries, err := s.logRepo.GetAll(ctx)
	if err != nil {
		s.metrics.RecordOperation(OpList, metrics.OutcomeError)
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	if entries == nil {
		entries = []models.LogEntry{}
	}

	s.logger.InfoContext(ctx, "Retrieved logs", "count", len(entries))
	s.metrics.RecordOperation(OpList, metrics.OutcomeSuccess)
	return entries, nil
}

// CreateLog validates the form, mints a new id and stores the entry
func (s *logService) CreateLog(ctx context.Context, form *models.LogEntryForm) (*models.LogEntry, error) {
	if err := s.validate(ctx, OpCreate, form); err != nil {
		return nil, err
	}

	entry := form.ToEntry(s.newID())

	if err := s.logRepo.Create(ctx, entry); err != nil {
		s.metrics.RecordOperation(OpCreate, metrics.OutcomeError)
		return nil, fmt.Errorf("failed to create log: %w", err)
	}

	s.logger.InfoContext(ctx, "Created log", "id", entry.ID, "userName", entry.UserName)
	s.metrics.RecordOperation(OpCreate, metrics.OutcomeSuccess)
	return entry, nil
}

// UpdateLog replaces every field of an existing entry and returns the stored result.
// A delete landing between the write and the re-read surfaces as ErrLogNotFound.
func (s *logService) UpdateLog(ctx context.Context, id string, form *models.LogEntryForm) (*models.LogEntry, error) {
	if err := s.validate(ctx, OpUpdate, form); err != nil {
		return nil, err
	}

	if err := s.logRepo.Update(ctx, form.ToEntry(id)); err != nil {
		return nil, s.writeFailure(ctx, OpUpdate, id, err)
	}

	updated, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.writeFailure(ctx, OpUpdate, id, err)
	}

	s.logger.InfoContext(ctx, "Updated log", "id", id)
	s.metrics.RecordOperation(OpUpdate, metrics.OutcomeSuccess)
	return updated, nil
}

// DeleteLog removes the entry with the given id
func (s *logService) DeleteLog(ctx context.Context, id string) error {
	if err := s.logRepo.Delete(ctx, id); err != nil {
		return s.writeFailure(ctx, OpDelete, id, err)
	}

	s.logger.InfoContext(ctx, "Deleted log", "id", id)
	s.metrics.RecordOperation(OpDelete, metrics.OutcomeSuccess)
	return nil
}

// validate runs the shared field validation before any write reaches storage
func (s *logService) validate(ctx context.Context, op string, form *models.LogEntryForm) error {
	fieldErrors := models.ValidateLogEntry(form)
	if !fieldErrors.HasErrors() {
		return nil
	}

	s.logger.WarnContext(ctx, "Invalid log entry", "operation", op, "errors", fieldErrors.Messages())
	s.metrics.RecordOperation(op, metrics.OutcomeInvalid)
	return &ValidationError{Fields: fieldErrors}
}

// writeFailure classifies a repository error for an id-addressed operation
func (s *logService) writeFailure(ctx context.Context, op, id string, err error) error {
	if errors.Is(err, ErrLogNotFound) {
		s.logger.WarnContext(ctx, "Log not found", "operation", op, "id", id)
		s.metrics.RecordOperation(op, metrics.OutcomeNotFound)
		return err
	}

	s.metrics.RecordOperation(op, metrics.OutcomeError)
	return fmt.Errorf("failed to %s log %s: %w", op, id, err)
}
