package parse

import (
	"fmt"

	"github.com/pshev/chat2md/internal"
)

// Adapter translates one source export schema into canonical sessions.
//
// Parse returns an error only when the input file itself cannot be read
// or decoded (missing file, corrupt archive, invalid JSON). A readable
// file that does not match the expected shape degrades to zero sessions
// plus warnings; individual malformed messages are skipped with a
// warning each.
type Adapter interface {
	Parse(path string) ([]internal.ChatSession, []string, error)
	Source() string
}

// NewAdapter creates an adapter for the given source format.
func NewAdapter(source string) (Adapter, error) {
	switch source {
	case SourceChatbox:
		return &ChatboxAdapter{}, nil
	case SourceChatlog:
		return &ChatlogAdapter{}, nil
	default:
		return nil, fmt.Errorf("unsupported source: %s (supported: %s, %s)", source, SourceChatbox, SourceChatlog)
	}
}

// Source format tags accepted by NewAdapter.
const (
	SourceChatbox = "chatbox"
	SourceChatlog = "chatlog"
)
