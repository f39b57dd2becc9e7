package parse

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pshev/chat2md/internal"
)

// ChatboxAdapter parses multi-session exports: a top-level
// "chat-sessions" array, each entry carrying a name and a messages
// array. Some older exports are a single bare session with a top-level
// messages array instead; those become one session named after the file.
type ChatboxAdapter struct{}

type chatboxExport struct {
	ChatSessions []chatboxSession `json:"chat-sessions"`
	// Messages is the single-session fallback shape.
	Messages json.RawMessage `json:"messages"`
}

type chatboxSession struct {
	Name       string `json:"name"`
	ThreadName string `json:"threadName"`
	// Messages stays raw so one malformed array degrades to an empty
	// session instead of failing the whole file.
	Messages json.RawMessage `json:"messages"`
}

type chatboxMessage struct {
	Role        string            `json:"role"`
	Content     string            `json:"content"`
	Timestamp   json.RawMessage   `json:"timestamp"`
	Model       string            `json:"model"`
	Pictures    []json.RawMessage `json:"pictures"`
	Files       []json.RawMessage `json:"files"`
	Links       []chatboxLink     `json:"links"`
	WebBrowsing *chatboxBrowsing  `json:"webBrowsing"`
}

type chatboxLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type chatboxBrowsing struct {
	Links []chatboxLink `json:"links"`
}

// Source returns the format tag this adapter handles.
func (a *ChatboxAdapter) Source() string { return SourceChatbox }

// Parse reads a chatbox export file and returns its sessions.
func (a *ChatboxAdapter) Parse(path string) ([]internal.ChatSession, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read input %s: %w", path, err)
	}

	var export chatboxExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, nil, fmt.Errorf("parse JSON %s: %w", path, err)
	}

	var warnings []string

	if len(export.ChatSessions) == 0 {
		if len(export.Messages) == 0 {
			warnings = append(warnings, fmt.Sprintf("%s: no chat-sessions or messages found, nothing to convert", filepath.Base(path)))
			return nil, warnings, nil
		}
		// Bare single-session export: title falls back to the file name.
		session, w := a.buildSession(baseName(path), export.Messages)
		return []internal.ChatSession{session}, append(warnings, w...), nil
	}

	sessions := make([]internal.ChatSession, 0, len(export.ChatSessions))
	for i, src := range export.ChatSessions {
		title := src.Name
		if title == "" {
			title = src.ThreadName
		}
		if title == "" {
			title = fmt.Sprintf("Session %d", i+1)
		}
		session, w := a.buildSession(title, src.Messages)
		sessions = append(sessions, session)
		warnings = append(warnings, w...)
	}

	return sessions, warnings, nil
}

// buildSession decodes one messages array, skipping messages that lack
// a role and tolerating a malformed array entirely.
func (a *ChatboxAdapter) buildSession(title string, rawMessages json.RawMessage) (internal.ChatSession, []string) {
	session := internal.ChatSession{Title: title}

	var warnings []string
	var msgs []chatboxMessage
	if len(rawMessages) > 0 {
		if err := json.Unmarshal(rawMessages, &msgs); err != nil {
			warnings = append(warnings, fmt.Sprintf("session %q: malformed messages array, converting as empty", title))
			return session, warnings
		}
	}

	for i, m := range msgs {
		if m.Role == "" {
			warnings = append(warnings, fmt.Sprintf("session %q: message %d has no role, skipping", title, i+1))
			continue
		}

		msg := internal.Message{
			Role:      strings.ToLower(m.Role),
			Content:   m.Content,
			Timestamp: internal.ParseTimestamp(m.Timestamp),
			Model:     m.Model,
			Pictures:  len(m.Pictures),
			Files:     len(m.Files),
		}
		for _, l := range m.Links {
			msg.Links = append(msg.Links, internal.Link{Title: l.Title, URL: l.URL})
		}
		if m.WebBrowsing != nil {
			for _, l := range m.WebBrowsing.Links {
				msg.WebSearchLinks = append(msg.WebSearchLinks, internal.Link{Title: l.Title, URL: l.URL})
			}
		}
		session.Messages = append(session.Messages, msg)
	}

	return session, warnings
}

// baseName returns the file name without directory or extension, used
// for title fallbacks.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
