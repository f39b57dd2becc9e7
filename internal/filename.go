package internal

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// DefaultMaxNameLength bounds the sanitized title component of an
// output file name.
const DefaultMaxNameLength = 50

// placeholderName stands in when sanitizing strips a title down to
// nothing.
const placeholderName = "untitled"

// SanitizeTitle turns a session title into a safe file name component.
// Characters outside letters, digits, hyphen and underscore become
// underscores, runs of underscores collapse, and the result is trimmed
// and truncated to max. The function is idempotent.
func SanitizeTitle(title string, max int) string {
	if max <= 0 {
		max = DefaultMaxNameLength
	}

	var b strings.Builder
	lastUnderscore := false
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteRune('_')
			lastUnderscore = true
		}
	}

	s := strings.Trim(b.String(), "_")
	if runes := []rune(s); len(runes) > max {
		s = strings.Trim(string(runes[:max]), "_")
	}
	if s == "" {
		return placeholderName
	}
	return s
}

// BuildFileName derives the output file name for a session:
// <YYYY-MM-DD_HHMM>_<sanitized-title>.<ext>. The date prefix comes from
// the first message's normalized timestamp, or now for an empty session.
func BuildFileName(session *ChatSession, ext string, max int, now time.Time) string {
	ts := now
	if len(session.Messages) > 0 {
		ts = NormalizeTimestamp(session.Messages[0].Timestamp, now)
	}
	prefix := ts.Local().Format("2006-01-02_1504")
	return fmt.Sprintf("%s_%s.%s", prefix, SanitizeTitle(session.Title, max), ext)
}

// NameSet disambiguates file names within one run. Sessions on the same
// minute with the same title would otherwise silently overwrite each
// other; duplicates get a numeric suffix before the extension instead.
type NameSet struct {
	seen map[string]bool
}

// NewNameSet creates an empty NameSet.
func NewNameSet() *NameSet {
	return &NameSet{seen: make(map[string]bool)}
}

// Claim returns name unchanged if unused, otherwise the first free
// variant of the form base_2.ext, base_3.ext, and so on.
func (n *NameSet) Claim(name string) string {
	if !n.seen[name] {
		n.seen[name] = true
		return name
	}

	base := name
	ext := ""
	if i := strings.LastIndex(name, "."); i > 0 {
		base, ext = name[:i], name[i:]
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		if !n.seen[candidate] {
			n.seen[candidate] = true
			return candidate
		}
	}
}
