// Package dto defines data transfer objects for API requests and responses.
package dto

import "time"

// DateFormat is the wire format for calendar dates. Timestamps (created_at,
// updated_at) stay RFC 3339; everything the user schedules is a plain date.
const DateFormat = "2006-01-02"

// ErrorResponse represents an error response from the API.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message"`
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateFormat)
	return &s
}
