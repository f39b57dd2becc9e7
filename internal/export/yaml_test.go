package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pshev/chat2md/internal"
)

func TestYAMLExporter_Export(t *testing.T) {
	session := internal.ChatSession{
		Title: "Yaml Check",
		Messages: []internal.Message{
			{Role: internal.RoleUser, Content: "hello", Timestamp: day(1, 10, 0)},
		},
	}

	var buf bytes.Buffer
	exporter := &YAMLExporter{}
	if err := exporter.Export(&session, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"title: Yaml Check", "role: user", "content: hello"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output should contain %q, got:\n%s", want, output)
		}
	}
}

func TestYAMLExporter_Extension(t *testing.T) {
	exporter := &YAMLExporter{}
	if got := exporter.Extension(); got != "yaml" {
		t.Errorf("YAMLExporter.Extension() = %v, want yaml", got)
	}
}
