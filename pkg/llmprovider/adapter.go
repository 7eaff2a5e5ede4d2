package llmprovider

import (
	"context"

	"gantt-chart-generator/pkg/gemini"
	"gantt-chart-generator/pkg/openai"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	if req.ResponseFormat == ResponseFormatJSON {
		geminiReq.ResponseMIMEType = gemini.MIMETypeJSON
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	out := &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		FinishReason: resp.FinishReason,
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	if out.Text() == "" {
		return nil, &ProviderError{Provider: a.Name(), Err: ErrEmptyResponse}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface. One
// adapter type serves every OpenAI-compatible vendor.
type OpenAIAdapter struct {
	client openai.IOpenAI
	name   string
}

// NewOpenAIAdapter creates a new adapter reporting itself as name
func NewOpenAIAdapter(client openai.IOpenAI, name string) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := &openai.Request{
		Messages:    convertToOpenAIMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.ResponseFormat == ResponseFormatJSON {
		chatReq.ResponseFormat = &openai.ResponseFormat{Type: openai.ResponseFormatJSONObject}
	}

	resp, err := a.client.ChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, &ProviderError{Provider: a.name, Err: ErrEmptyResponse}
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}
	choice := resp.Choices[0]
	return &Response{
		Content: Message{
			Role:  RoleAssistant,
			Parts: []Part{{Text: choice.Message.Content}},
		},
		ProviderName: a.name,
		ModelName:    model,
		FinishReason: choice.FinishReason,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	role := msg.Role
	if role == RoleAssistant {
		role = "model"
	}
	return &gemini.Content{Role: role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: RoleAssistant, Parts: parts}
}

// Conversion helpers for OpenAI-compatible APIs
func convertToOpenAIMessages(req *Request) []openai.Message {
	messages := make([]openai.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		messages = append(messages, openai.Message{
			Role:    openai.RoleSystem,
			Content: req.SystemInstruction.Text(),
		})
	}
	for _, msg := range req.Messages {
		role := msg.Role
		if role == "" {
			role = openai.RoleUser
		}
		messages = append(messages, openai.Message{Role: role, Content: msg.Text()})
	}
	return messages
}
