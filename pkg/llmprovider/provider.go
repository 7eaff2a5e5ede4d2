package llmprovider

import (
	"context"
	"strings"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// ResponseFormat hints at the shape of the expected reply.
type ResponseFormat string

const (
	ResponseFormatText ResponseFormat = ""
	ResponseFormatJSON ResponseFormat = "json"
)

// Roles understood by every adapter.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	ResponseFormat    ResponseFormat
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "assistant"
	Parts []Part
}

// Part represents a text segment of a message
type Part struct {
	Text string
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	FinishReason string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserText builds a request with a single user message.
func UserText(system, prompt string) *Request {
	req := &Request{
		Messages: []Message{{Role: RoleUser, Parts: []Part{{Text: prompt}}}},
	}
	if system != "" {
		req.SystemInstruction = &Message{Parts: []Part{{Text: system}}}
	}
	return req
}

// Text returns the concatenated text of the response.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return r.Content.Text()
}

// Text returns the concatenated text parts of the message.
func (m Message) Text() string {
	var sb strings.Builder
	for _, p := range m.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}
