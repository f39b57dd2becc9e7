package internal

import "time"

// Role values after normalization. Source vocabularies are folded into
// these by the adapters; anything unrecognized is kept lowercased.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatSession is the canonical representation of one conversation,
// produced by a schema adapter and consumed by an exporter. Title is
// never empty; messages keep the order they appeared in the source.
type ChatSession struct {
	Title    string    `json:"title" yaml:"title"`
	Messages []Message `json:"messages" yaml:"messages"`
}

// Message is one turn in a session.
type Message struct {
	Role      string    `json:"role" yaml:"role"`
	Content   string    `json:"content" yaml:"content"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	// Model identifies which model produced an assistant reply; empty
	// for other roles.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`
	// Pictures and Files count attachments in the source export. The
	// exports carry no binary payloads, so only presence survives.
	Pictures       int    `json:"pictures,omitempty" yaml:"pictures,omitempty"`
	Files          int    `json:"files,omitempty" yaml:"files,omitempty"`
	Links          []Link `json:"links,omitempty" yaml:"links,omitempty"`
	WebSearchLinks []Link `json:"web_search_links,omitempty" yaml:"web_search_links,omitempty"`
}

// Link is a titled URL attached to a message. WebSearchLinks use the
// same shape but come from automated browsing rather than the authors.
type Link struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	URL   string `json:"url" yaml:"url"`
}

// RenderedDocument is one output artifact: a file name plus its full
// content, ready to hand to a writer.
type RenderedDocument struct {
	FileName string
	Content  string
}
