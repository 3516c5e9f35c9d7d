package models

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// JSON field names of a log entry, used as keys in validation details
const (
	FieldUserName    = "userName"
	FieldDescription = "description"
	FieldDate        = "date"
	FieldLocation    = "location"
)

// MsgInvalidDate is reported for a date that is present but cannot be parsed
const MsgInvalidDate = "Invalid date format"

// MsgInvalidInput is the error for a request body rejected before dispatch
const MsgInvalidInput = "Invalid input"

// MsgBodyTooLarge is the error for a request body over the configured size limit
const MsgBodyTooLarge = "Request body too large."

// MsgTooManyRequests is the error for a client over its rate limit
const MsgTooManyRequests = "Too many requests."

// FieldError is a single failed field check
type FieldError struct {
	Field   string
	Message string
	// Missing is set when the field was absent or empty rather than malformed
	Missing bool
}

// FieldErrors lists the failed checks of one form, in field declaration order
type FieldErrors []FieldError

func (e *FieldErrors) addMissing(field string) {
	*e = append(*e, FieldError{Field: field, Message: field + " is required", Missing: true})
}

func (e *FieldErrors) addInvalid(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any field failed validation
func (e FieldErrors) HasErrors() bool {
	return len(e) > 0
}

// HasMissing reports whether at least one field was absent or empty,
// as opposed to present but malformed
func (e FieldErrors) HasMissing() bool {
	for _, fe := range e {
		if fe.Missing {
			return true
		}
	}
	return false
}

// Get returns the message recorded for field, or "" if it passed
func (e FieldErrors) Get(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Messages returns the field to message map sent to clients as details
func (e FieldErrors) Messages() map[string]string {
	if len(e) == 0 {
		return nil
	}
	out := make(map[string]string, len(e))
	for _, fe := range e {
		out[fe.Field] = fe.Message
	}
	return out
}

// ErrorResponse is the JSON body returned for every failed request
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse is the JSON body returned for acknowledgements without a payload
type MessageResponse struct {
	Message string `json:"message"`
}

// jsDateLayout is what a browser's Date.prototype.toString produces once the
// parenthesised zone name is cut off
const jsDateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700"

// IsValidDate reports whether s parses as a point in time.
// ISO-8601, RFC 1123, US month/day forms, month names, unix timestamps and
// browser Date strings all pass. Surrounding whitespace is ignored.
func IsValidDate(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if _, err := dateparse.ParseAny(s); err == nil {
		return true
	}

	if i := strings.Index(s, " ("); i > 0 && strings.HasSuffix(s, ")") {
		s = s[:i]
		if _, err := dateparse.ParseAny(s); err == nil {
			return true
		}
	}
	_, err := time.Parse(jsDateLayout, s)
	return err == nil
}
