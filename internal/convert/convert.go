// Package convert runs the conversion pipeline for one input file:
// adapter -> canonical sessions -> exporter -> file name -> writer.
package convert

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pshev/chat2md/internal"
	"github.com/pshev/chat2md/internal/export"
	"github.com/pshev/chat2md/internal/parse"
)

// Writer persists rendered documents. The pipeline itself never touches
// the output directory; directory creation and cleanup belong to the
// writer.
type Writer interface {
	Write(doc internal.RenderedDocument) error
}

// Options configure one conversion run.
type Options struct {
	Source     string // parse.SourceChatbox or parse.SourceChatlog
	Format     string // exporter format, default "md"
	MaxNameLen int    // sanitized title length limit, 0 means default
	// Now overrides the clock used for timestamp normalization and
	// date prefixes. Nil means time.Now.
	Now func() time.Time
}

// Result summarizes one conversion run.
type Result struct {
	Documents int
	Failures  int
	Warnings  []string
}

// Run converts one input file and hands each rendered document to w.
// A session that fails to render or write is reported and skipped;
// its siblings are still processed. Only a file-level read or decode
// problem is returned as an error.
func Run(inputPath string, opts Options, w Writer) (*Result, error) {
	adapter, err := parse.NewAdapter(opts.Source)
	if err != nil {
		return nil, err
	}

	format := opts.Format
	if format == "" {
		format = "md"
	}
	exporter, err := export.NewExporter(format)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	if md, ok := exporter.(*export.MarkdownExporter); ok {
		md.Now = now
	}

	sessions, warnings, err := adapter.Parse(inputPath)
	if err != nil {
		return nil, err
	}

	result := &Result{Warnings: warnings}
	names := internal.NewNameSet()

	for i := range sessions {
		session := &sessions[i]

		var buf bytes.Buffer
		if err := exporter.Export(session, &buf); err != nil {
			result.Failures++
			result.Warnings = append(result.Warnings, fmt.Sprintf("session %q: render failed: %v", session.Title, err))
			continue
		}

		name := internal.BuildFileName(session, exporter.Extension(), opts.MaxNameLen, now())
		doc := internal.RenderedDocument{
			FileName: names.Claim(name),
			Content:  buf.String(),
		}

		if err := w.Write(doc); err != nil {
			result.Failures++
			result.Warnings = append(result.Warnings, fmt.Sprintf("session %q: write %s failed: %v", session.Title, doc.FileName, err))
			continue
		}

		internal.LogDebug("wrote %s (%d messages)", doc.FileName, len(session.Messages))
		result.Documents++
	}

	return result, nil
}
