package utils

import (
	"strings"

	"github.com/google/uuid"
)

// SessionPrefix starts every generated session id
const SessionPrefix = "game"

// GenerateSessionID creates a short, human-readable session id.
// Format: game-{8charHexUUID}, e.g. "game-a3f8e2b1"
func GenerateSessionID() string {
	return SessionPrefix + "-" + generateShortUUID()
}

// IsSessionID reports whether id has the shape produced by GenerateSessionID
func IsSessionID(id string) bool {
	suffix, ok := strings.CutPrefix(id, SessionPrefix+"-")
	if !ok || len(suffix) != 8 {
		return false
	}
	for _, r := range suffix {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// generateShortUUID creates an 8-character hex string from a UUID
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
