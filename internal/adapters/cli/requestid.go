package cli

import (
	"strings"

	"github.com/google/uuid"
)

// newRequestID builds a short, human-readable correlation ID for a single
// command invocation: {operation}-{8charHexUUID}. It has no bearing on game
// state, only on log lines, so it never affects replay determinism.
func newRequestID(operation string) string {
	id := uuid.New()
	short := strings.ReplaceAll(id.String(), "-", "")[:8]
	return operation + "-" + short
}
