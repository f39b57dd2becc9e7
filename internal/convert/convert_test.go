package convert

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pshev/chat2md/internal"
	"github.com/pshev/chat2md/internal/parse"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)

func fixedNow() time.Time { return testNow }

// memWriter collects documents in memory; failOn makes a specific file
// name fail to exercise sibling isolation.
type memWriter struct {
	docs   []internal.RenderedDocument
	failOn string
}

func (w *memWriter) Write(doc internal.RenderedDocument) error {
	if w.failOn != "" && strings.Contains(doc.FileName, w.failOn) {
		return errors.New("disk full")
	}
	w.docs = append(w.docs, doc)
	return nil
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

const tripFixture = `{
	"chat-sessions": [
		{
			"name": "Trip Planning",
			"messages": [
				{"role": "user", "content": "Where to go?", "timestamp": "2024-03-01T10:15:00"},
				{"role": "assistant", "model": "gpt-4", "content": "Try Kyoto.", "timestamp": "2024-03-01T10:16:00"}
			]
		}
	]
}`

func TestRun_EndToEnd(t *testing.T) {
	path := writeFixture(t, "export.json", tripFixture)
	w := &memWriter{}

	result, err := Run(path, Options{Source: parse.SourceChatbox, Now: fixedNow}, w)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Documents != 1 {
		t.Fatalf("documents = %d, want 1", result.Documents)
	}

	doc := w.docs[0]
	if doc.FileName != "2024-03-01_1015_Trip_Planning.md" {
		t.Errorf("file name = %q, want 2024-03-01_1015_Trip_Planning.md", doc.FileName)
	}
	for _, want := range []string{
		"## 2024-03-01",
		"### USER | 10:15",
		"Where to go?",
		"### gpt-4 | 10:16",
		"Try Kyoto.",
	} {
		if !strings.Contains(doc.Content, want) {
			t.Errorf("content should contain %q, got:\n%s", want, doc.Content)
		}
	}
}

func TestRun_NameCollisions(t *testing.T) {
	fixture := `{
		"chat-sessions": [
			{"name": "Same", "messages": [{"role": "user", "content": "a", "timestamp": "2024-03-01T10:15:00"}]},
			{"name": "Same", "messages": [{"role": "user", "content": "b", "timestamp": "2024-03-01T10:15:30"}]}
		]
	}`

	path := writeFixture(t, "export.json", fixture)
	w := &memWriter{}

	result, err := Run(path, Options{Source: parse.SourceChatbox, Now: fixedNow}, w)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Documents != 2 {
		t.Fatalf("documents = %d, want 2", result.Documents)
	}
	if w.docs[0].FileName == w.docs[1].FileName {
		t.Errorf("colliding sessions share file name %q", w.docs[0].FileName)
	}
	if w.docs[1].FileName != "2024-03-01_1015_Same_2.md" {
		t.Errorf("second file name = %q, want _2 suffix", w.docs[1].FileName)
	}
}

func TestRun_WriteFailureDoesNotAbortSiblings(t *testing.T) {
	fixture := `{
		"chat-sessions": [
			{"name": "First", "messages": [{"role": "user", "content": "a", "timestamp": "2024-03-01T10:00:00"}]},
			{"name": "Second", "messages": [{"role": "user", "content": "b", "timestamp": "2024-03-02T10:00:00"}]}
		]
	}`

	path := writeFixture(t, "export.json", fixture)
	w := &memWriter{failOn: "First"}

	result, err := Run(path, Options{Source: parse.SourceChatbox, Now: fixedNow}, w)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Documents != 1 {
		t.Errorf("documents = %d, want 1 surviving sibling", result.Documents)
	}
	if result.Failures != 1 {
		t.Errorf("failures = %d, want 1", result.Failures)
	}
	if len(w.docs) != 1 || !strings.Contains(w.docs[0].FileName, "Second") {
		t.Errorf("surviving doc = %+v, want the Second session", w.docs)
	}

	found := false
	for _, warning := range result.Warnings {
		if strings.Contains(warning, "write") && strings.Contains(warning, "First") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want a write failure for First", result.Warnings)
	}
}

func TestRun_WarningsPropagate(t *testing.T) {
	fixture := `{"unexpected": true}`
	path := writeFixture(t, "export.json", fixture)
	w := &memWriter{}

	result, err := Run(path, Options{Source: parse.SourceChatbox, Now: fixedNow}, w)
	if err != nil {
		t.Fatalf("Run() error = %v, want degraded result", err)
	}
	if result.Documents != 0 {
		t.Errorf("documents = %d, want 0", result.Documents)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a schema mismatch warning")
	}
}

func TestRun_Errors(t *testing.T) {
	w := &memWriter{}

	if _, err := Run("nope.json", Options{Source: "fax"}, w); err == nil {
		t.Error("Run() with unsupported source should error")
	}

	path := writeFixture(t, "export.json", tripFixture)
	if _, err := Run(path, Options{Source: parse.SourceChatbox, Format: "pdf"}, w); err == nil {
		t.Error("Run() with unsupported format should error")
	}

	if _, err := Run(filepath.Join(t.TempDir(), "missing.json"), Options{Source: parse.SourceChatbox}, w); err == nil {
		t.Error("Run() on missing input should error")
	}
}

func TestDirWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	w := NewDirWriter(dir)

	doc := internal.RenderedDocument{FileName: "note.md", Content: "# hi\n"}
	if err := w.Write(doc); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "note.md"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "# hi\n" {
		t.Errorf("content = %q, want %q", data, "# hi\n")
	}
}
