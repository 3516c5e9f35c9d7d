package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrTrailingData is returned when a request body holds more than one JSON value
var ErrTrailingData = errors.New("unexpected data after JSON object")

// LogEntry represents a single dated event in the log
type LogEntry struct {
	ID          string `json:"id" db:"id"`
	UserName    string `json:"userName" db:"userName"`
	Description string `json:"description" db:"description"`
	Date        string `json:"date" db:"date"`
	Location    string `json:"location" db:"location"`
}

// LogEntryForm represents the request body for creating or replacing a log entry
type LogEntryForm struct {
	UserName    string `json:"userName"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
}

// Validate validates the log entry form data
func (f *LogEntryForm) Validate() FieldErrors {
	return ValidateLogEntry(f)
}

// ToEntry builds a LogEntry with the given id from the form fields, unchanged
func (f *LogEntryForm) ToEntry(id string) *LogEntry {
	return &LogEntry{
		ID:          id,
		UserName:    f.UserName,
		Description: f.Description,
		Date:        f.Date,
		Location:    f.Location,
	}
}

// ValidateLogEntry checks that every field is present and that date parses.
// A nil form is treated as a form with every field missing.
func ValidateLogEntry(f *LogEntryForm) FieldErrors {
	if f == nil {
		f = &LogEntryForm{}
	}

	var fieldErrors FieldErrors

	if f.UserName == "" {
		fieldErrors.addMissing(FieldUserName)
	}
	if f.Description == "" {
		fieldErrors.addMissing(FieldDescription)
	}

	if f.Date == "" {
		fieldErrors.addMissing(FieldDate)
	} else if !IsValidDate(f.Date) {
		fieldErrors.addInvalid(FieldDate, MsgInvalidDate)
	}

	if f.Location == "" {
		fieldErrors.addMissing(FieldLocation)
	}

	return fieldErrors
}

// DecodeLogEntryForm reads exactly one JSON object from r.
// Reader errors such as *http.MaxBytesError are returned wrapped.
func DecodeLogEntryForm(r io.Reader) (*LogEntryForm, error) {
	dec := json.NewDecoder(r)

	var form LogEntryForm
	if err := dec.Decode(&form); err != nil {
		return nil, fmt.Errorf("failed to decode log entry: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("failed to decode log entry: %w", err)
		}
		return nil, ErrTrailingData
	}

	return &form, nil
}
