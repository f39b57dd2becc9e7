package parse

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pshev/chat2md/internal"
)

// ChatlogAdapter parses single-session log exports: a JSON payload with
// a "log" array of entries, delivered either directly or zipped with
// one JSON entry inside. All entries collapse into one session.
type ChatlogAdapter struct{}

type chatlogPayload struct {
	Title string `json:"title"`
	// Log stays raw so a payload without the array degrades to a
	// warning instead of an error.
	Log json.RawMessage `json:"log"`
}

type chatlogEntry struct {
	From      string `json:"from"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Source returns the format tag this adapter handles.
func (a *ChatlogAdapter) Source() string { return SourceChatlog }

// Parse reads a chatlog export (.json or .zip) and returns its session.
func (a *ChatlogAdapter) Parse(path string) ([]internal.ChatSession, []string, error) {
	var data []byte
	var err error
	var warnings []string

	if strings.EqualFold(filepath.Ext(path), ".zip") {
		data, err = readArchiveJSON(path)
		if err != nil {
			return nil, nil, err
		}
		if data == nil {
			warnings = append(warnings, fmt.Sprintf("%s: archive contains no JSON entry", filepath.Base(path)))
			return nil, warnings, nil
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read input %s: %w", path, err)
		}
	}

	var payload chatlogPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, nil, fmt.Errorf("parse JSON %s: %w", path, err)
	}

	if len(payload.Log) == 0 {
		warnings = append(warnings, fmt.Sprintf("%s: no log array found, nothing to convert", filepath.Base(path)))
		return nil, warnings, nil
	}

	var entries []chatlogEntry
	if err := json.Unmarshal(payload.Log, &entries); err != nil {
		warnings = append(warnings, fmt.Sprintf("%s: malformed log array, nothing to convert", filepath.Base(path)))
		return nil, warnings, nil
	}

	title := payload.Title
	if title == "" {
		title = baseName(path)
	}

	session := internal.ChatSession{Title: title}
	for i, e := range entries {
		if e.From == "" {
			warnings = append(warnings, fmt.Sprintf("session %q: entry %d has no sender, skipping", title, i+1))
			continue
		}
		session.Messages = append(session.Messages, internal.Message{
			Role:      normalizeChatlogRole(e.From),
			Content:   e.Content,
			Timestamp: internal.ParseTimestampString(e.Timestamp),
		})
	}

	return []internal.ChatSession{session}, warnings, nil
}

// normalizeChatlogRole folds the export's sender vocabulary into the
// canonical roles: "human" means the user, everything else is kept
// lowercased.
func normalizeChatlogRole(from string) string {
	role := strings.ToLower(from)
	if role == "human" {
		return internal.RoleUser
	}
	return role
}

// readArchiveJSON extracts the first non-directory .json entry from a
// zip archive. It returns nil data when the archive has no JSON entry;
// the archive handle never escapes this function.
func readArchiveJSON(path string) ([]byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(f.Name), ".json") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open archive entry %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read archive entry %s: %w", f.Name, err)
		}
		return data, nil
	}

	return nil, nil
}
