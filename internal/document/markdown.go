package document

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	md           = goldmark.New()
	reBlankLines = regexp.MustCompile(`\n{3,}`)
)

// MarkdownToText strips Markdown syntax and keeps the readable text,
// one block per paragraph. Code blocks are kept verbatim; raw HTML is dropped.
func MarkdownToText(src []byte) string {
	doc := md.Parser().Parse(text.NewReader(src))

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument {
				endLine(&buf)
				if n.Kind() == ast.KindParagraph || n.Kind() == ast.KindHeading {
					buf.WriteString("\n")
				}
			}
			return ast.WalkContinue, nil
		}

		switch v := n.(type) {
		case *ast.Text:
			buf.Write(v.Segment.Value(src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				buf.WriteString("\n")
			}
		case *ast.String:
			buf.Write(v.Value)
		case *ast.AutoLink:
			buf.Write(v.Label(src))
		case *ast.ListItem:
			buf.WriteString("- ")
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(src))
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	out := reBlankLines.ReplaceAllString(buf.String(), "\n\n")
	return strings.TrimSpace(out)
}

func endLine(buf *bytes.Buffer) {
	if b := buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		buf.WriteString("\n")
	}
}
