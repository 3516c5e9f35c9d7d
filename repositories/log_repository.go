package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/the-Alberich/code-test-ba/models"
)

// ErrLogNotFound is returned when no row matches the requested log id
var ErrLogNotFound = errors.New("log not found")

// LogRepository interface defines log entry database operations
type LogRepository interface {
	GetAll(ctx context.Context) ([]models.LogEntry, error)
	GetByID(ctx context.Context, id string) (*models.LogEntry, error)
	Create(ctx context.Context, entry *models.LogEntry) error
	Update(ctx context.Context, entry *models.LogEntry) error
	Delete(ctx context.Context, id string) error
}

// logRepository implements LogRepository interface
type logRepository struct {
	db *sql.DB
}

// NewLogRepository creates a new log repository
func NewLogRepository(db *sql.DB) LogRepository {
	return &logRepository{db: db}
}

// GetAll retrieves all log entries, newest date first.
// date is stored as text, so the order is lexicographic.
func (r *logRepository) GetAll(ctx context.Context) ([]models.LogEntry, error) {
	query := `
		SELECT id, userName, description, date, location
		FROM logs
		ORDER BY date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	defer rows.Close()

	entries := []models.LogEntry{}
	for rows.Next() {
		var entry models.LogEntry
		err := rows.Scan(
			&entry.ID,
			&entry.UserName,
			&entry.Description,
			&entry.Date,
			&entry.Location,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating logs: %w", err)
	}

	return entries, nil
}

// GetByID retrieves a log entry by ID
func (r *logRepository) GetByID(ctx context.Context, id string) (*models.LogEntry, error) {
	query := `
		SELECT id, userName, description, date, location
		FROM logs
		WHERE id = ?
	`

	var entry models.LogEntry
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&entry.ID,
		&entry.UserName,
		&entry.Description,
		&entry.Date,
		&entry.Location,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("log with ID %s: %w", id, ErrLogNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get log: %w", err)
	}

	return &entry, nil
}

// Create inserts a new log entry. The entry must already carry its ID;
// an ID collision fails on the primary key.
func (r *logRepository) Create(ctx context.Context, entry *models.LogEntry) error {
	query := `
		INSERT INTO logs (id, userName, description, date, location)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserName,
		entry.Description,
		entry.Date,
		entry.Location,
	)
	if err != nil {
		return fmt.Errorf("failed to create log: %w", err)
	}

	return nil
}

// Update replaces all fields of an existing log entry
func (r *logRepository) Update(ctx context.Context, entry *models.LogEntry) error {
	query := `
		UPDATE logs
		SET userName = ?, description = ?, date = ?, location = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.UserName,
		entry.Description,
		entry.Date,
		entry.Location,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update log: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("log with ID %s: %w", entry.ID, ErrLogNotFound)
	}

	return nil
}

// Delete deletes a log entry by ID
func (r *logRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM logs WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("log with ID %s: %w", id, ErrLogNotFound)
	}

	return nil
}
