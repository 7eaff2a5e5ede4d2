package openai

import (
	"fmt"
	"net/http"
)

// Config holds client configuration. Empty BaseURL and Model fall back to
// Vendor, then to the OpenAI defaults.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	Vendor     Vendor
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.Vendor.Name == "" {
		c.Vendor = VendorOpenAI
	}
	if c.Model == "" {
		c.Model = c.Vendor.Model
	}
	if c.BaseURL == "" {
		c.BaseURL = c.Vendor.BaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// openAIImpl is the internal implementation of IOpenAI
type openAIImpl struct {
	apiKey     string
	model      string
	baseURL    string
	vendor     string
	httpClient *http.Client
}

// Request is a chat-completions request. Model defaults to the client's model.
type Request struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// Message is one chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat constrains the reply format.
type ResponseFormat struct {
	Type string `json:"type"`
}

// Response is a chat-completions response.
type Response struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice is one completion candidate.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage tracks token consumption
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// APIError is returned for non-200 responses.
type APIError struct {
	Vendor     string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: API error %d: %s", e.Vendor, e.StatusCode, e.Message)
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}
