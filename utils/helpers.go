package utils

import (
	"github.com/google/uuid"
)

// NewID generates a unique entity ID
func NewID() string {
	return uuid.NewString()
}

// NewProjectID generates an id for user-created projects.
// Format: "custom_" + 8 hex characters, e.g. "custom_3f9a1c2e"
func NewProjectID() string {
	return "custom_" + uuid.NewString()[:8]
}
