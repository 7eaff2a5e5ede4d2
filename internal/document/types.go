package document

const (
	DefaultMaxBytes    = 5 << 20
	DefaultConcurrency = 4
)

// Config bounds what the reader will load.
type Config struct {
	MaxBytes    int64
	Concurrency int
}

// Document is one successfully read file.
type Document struct {
	Path    string
	Name    string
	Kind    Kind
	Content string
}

// Result holds the documents that were read and a warning per skipped file.
type Result struct {
	Documents []Document
	Warnings  []string
}

// Texts returns the document contents in order.
func (r Result) Texts() []string {
	out := make([]string, len(r.Documents))
	for i, d := range r.Documents {
		out[i] = d.Content
	}
	return out
}

// Kind classifies a file by extension.
type Kind string

const (
	KindText     Kind = "text"
	KindMarkdown Kind = "markdown"
	KindPDF      Kind = "pdf"
	KindWord     Kind = "word"
)
