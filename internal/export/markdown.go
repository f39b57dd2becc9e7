package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pshev/chat2md/internal"
)

// MarkdownExporter renders sessions as note-taking friendly Markdown:
// a level-2 heading per calendar date, a level-3 heading per message,
// system messages fenced as code, placeholders for attachments.
type MarkdownExporter struct {
	// Now overrides the clock used for timestamp normalization.
	// Nil means time.Now.
	Now func() time.Time
}

// Export writes the rendered session to w.
func (e *MarkdownExporter) Export(session *internal.ChatSession, w io.Writer) error {
	_, err := io.WriteString(w, e.Render(session))
	return err
}

// Render produces the Markdown text for one session.
func (e *MarkdownExporter) Render(session *internal.ChatSession) string {
	now := time.Now()
	if e.Now != nil {
		now = e.Now()
	}

	if len(session.Messages) == 0 {
		return "{no messages}\n"
	}

	var b strings.Builder
	lastDate := ""

	for _, msg := range session.Messages {
		ts := internal.NormalizeTimestamp(msg.Timestamp, now)

		if date := internal.DateString(ts); date != lastDate {
			fmt.Fprintf(&b, "## %s\n\n", date)
			lastDate = date
		}

		if msg.Role == internal.RoleSystem {
			// Known limitation: content containing a ``` sequence
			// breaks the fence.
			b.WriteString("```system\n")
			b.WriteString(msg.Content)
			if !strings.HasSuffix(msg.Content, "\n") {
				b.WriteByte('\n')
			}
			b.WriteString("```\n")
		} else {
			label := strings.ToUpper(msg.Role)
			if msg.Role == internal.RoleAssistant && msg.Model != "" {
				label = msg.Model
			}
			fmt.Fprintf(&b, "### %s | %s\n", label, internal.TimeString(ts))
			b.WriteString(msg.Content)
			b.WriteByte('\n')
		}

		if msg.Pictures > 0 {
			b.WriteString("{pictures}\n")
		}
		if msg.Files > 0 {
			b.WriteString("{files}\n")
		}

		if len(msg.Links) > 0 {
			b.WriteString("{links}\n")
			for _, l := range msg.Links {
				if l.URL == "" {
					continue
				}
				fmt.Fprintf(&b, "[%s](%s)\n", linkTitle(l), l.URL)
			}
		}

		if len(msg.WebSearchLinks) > 0 {
			b.WriteString("{web search links}\n")
			for _, l := range msg.WebSearchLinks {
				if l.URL == "" {
					continue
				}
				fmt.Fprintf(&b, "- [%s](%s)\n", linkTitle(l), l.URL)
			}
		}

		b.WriteByte('\n')
	}

	return b.String()
}

func linkTitle(l internal.Link) string {
	if l.Title != "" {
		return l.Title
	}
	return l.URL
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
