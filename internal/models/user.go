package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
	LastLoginAt time.Time `json:"last_login_at,omitzero"`
}

// ParseError reports a malformed or incomplete user payload from the upstream
// API. Callers receive either a fully populated User or a ParseError, never a
// partially filled value.
type ParseError struct {
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid user payload: %s", e.Reason)
	}
	return fmt.Sprintf("invalid user payload: field %q %s", e.Field, e.Reason)
}

// ParseUser decodes a user object at the API boundary. A user is only valid
// with a non-empty id and email; anything else is rejected here rather than
// letting a half-empty user propagate into the UI layer.
func ParseUser(data []byte) (*User, error) {
	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}

	if user.ID == "" {
		return nil, &ParseError{Field: "id", Reason: "is required"}
	}

	if user.Email == "" {
		return nil, &ParseError{Field: "email", Reason: "is required"}
	}

	return &user, nil
}
