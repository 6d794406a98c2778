package utils

import (
	"strings"

	"github.com/google/uuid"
)

const maxRequestIDLength = 64

// NewRequestID returns a random identifier for a single request.
func NewRequestID() string {
	return uuid.NewString()
}

// SanitizeRequestID accepts a client supplied id only if it is short and made
// of printable ASCII without spaces; otherwise it returns "".
func SanitizeRequestID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > maxRequestIDLength {
		return ""
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return ""
		}
	}
	return id
}
