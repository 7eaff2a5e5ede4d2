package openai

import "time"

const (
	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the default OpenAI model
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// ResponseFormatJSONObject asks for a single JSON object in the reply.
	ResponseFormatJSONObject = "json_object"

	maxErrorBody = 2048
)

// Vendor holds the defaults of an OpenAI-compatible service.
type Vendor struct {
	Name    string
	BaseURL string
	Model   string
}

var (
	VendorOpenAI   = Vendor{Name: "openai", BaseURL: DefaultBaseURL, Model: DefaultModel}
	VendorDeepSeek = Vendor{Name: "deepseek", BaseURL: "https://api.deepseek.com/v1", Model: "deepseek-chat"}
	VendorQwen     = Vendor{Name: "qwen", BaseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", Model: "qwen-plus"}
)

// LookupVendor resolves a provider name to its vendor defaults.
func LookupVendor(name string) (Vendor, bool) {
	switch name {
	case "openai":
		return VendorOpenAI, true
	case "deepseek":
		return VendorDeepSeek, true
	case "qwen", "alibaba":
		return VendorQwen, true
	default:
		return Vendor{}, false
	}
}
