package export

import "testing"

func TestNewExporter(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantExt string
		wantErr bool
	}{
		{
			name:    "markdown",
			format:  "md",
			wantExt: "md",
		},
		{
			name:    "markdown long form",
			format:  "markdown",
			wantExt: "md",
		},
		{
			name:    "json",
			format:  "json",
			wantExt: "json",
		},
		{
			name:    "yaml",
			format:  "yaml",
			wantExt: "yaml",
		},
		{
			name:    "jsonl",
			format:  "jsonl",
			wantExt: "jsonl",
		},
		{
			name:    "unsupported",
			format:  "pdf",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter, err := NewExporter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewExporter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := exporter.Extension(); got != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", got, tt.wantExt)
			}
		})
	}
}
