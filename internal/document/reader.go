package document

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"gantt-chart-generator/pkg/log"
)

type implReader struct {
	l   log.Logger
	cfg Config
}

func (r *implReader) ReadAll(ctx context.Context, paths []string) (Result, error) {
	docs := make([]*Document, len(paths))
	warnings := make([]string, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)

	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := r.read(p)
			if err != nil {
				r.l.Warnf(gctx, "document.ReadAll: skip %s: %v", p, err)
				warnings[i] = fmt.Sprintf("could not read %s: %v", filepath.Base(p), err)
				return nil
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var res Result
	for i := range paths {
		if docs[i] != nil {
			res.Documents = append(res.Documents, *docs[i])
		}
		if warnings[i] != "" {
			res.Warnings = append(res.Warnings, warnings[i])
		}
	}
	return res, nil
}

func (r *implReader) read(path string) (*Document, error) {
	name := filepath.Base(path)
	kind := KindOf(path)

	doc := &Document{Path: path, Name: name, Kind: kind}
	switch kind {
	case KindPDF:
		doc.Content = fmt.Sprintf("[PDF Document: %s]\nNote: For full PDF text extraction, please convert to .txt or .md format.", name)
		return doc, nil
	case KindWord:
		doc.Content = fmt.Sprintf("[Word Document: %s]\nNote: For full Word document text extraction, please convert to .txt or .md format.", name)
		return doc, nil
	}

	raw, err := r.readFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("not UTF-8 text")
	}

	if kind == KindMarkdown {
		doc.Content = MarkdownToText(raw)
	} else {
		doc.Content = string(raw)
	}
	return doc, nil
}

func (r *implReader) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("is a directory")
	}

	raw, err := io.ReadAll(io.LimitReader(f, r.cfg.MaxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(raw)) > r.cfg.MaxBytes {
		return nil, fmt.Errorf("larger than %d bytes", r.cfg.MaxBytes)
	}
	return raw, nil
}

// KindOf classifies path by extension. Unknown extensions are read as text.
func KindOf(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return KindMarkdown
	case ".pdf":
		return KindPDF
	case ".doc", ".docx":
		return KindWord
	default:
		return KindText
	}
}
