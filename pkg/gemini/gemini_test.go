package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gantt-chart-generator/pkg/gemini"
)

func TestNew_Validate(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}

	client, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("expected default model, got %s", client.Model())
	}
}

func TestGenerateContent(t *testing.T) {
	var got map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/gemini-test:generateContent" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("x-goog-api-key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":401,"message":"bad key"}}`))
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		_, _ = w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [{"text": "{\"title\":\"Plan\"}"}]},
				"finishReason": "STOP"
			}],
			"usageMetadata": {"promptTokenCount": 10, "candidatesTokenCount": 5, "totalTokenCount": 15}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "system"}}},
			Messages:          []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "Hello"}}}},
			Temperature:       0.7,
			MaxTokens:         100,
			ResponseMIMEType:  gemini.MIMETypeJSON,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Parts[0].Text != `{"title":"Plan"}` {
			t.Errorf("unexpected content: %q", resp.Content.Parts[0].Text)
		}
		if resp.Usage.TotalTokens != 15 || resp.FinishReason != "STOP" {
			t.Errorf("unexpected usage/finish: %+v %s", resp.Usage, resp.FinishReason)
		}

		cfg, ok := got["generationConfig"].(map[string]any)
		if !ok {
			t.Fatalf("missing generationConfig in %v", got)
		}
		if cfg["responseMimeType"] != "application/json" {
			t.Errorf("expected JSON mime type, got %v", cfg["responseMimeType"])
		}
		if cfg["maxOutputTokens"] != float64(100) {
			t.Errorf("unexpected maxOutputTokens %v", cfg["maxOutputTokens"])
		}
		if _, ok := got["system_instruction"]; !ok {
			t.Error("missing system_instruction")
		}
	})

	t.Run("API error", func(t *testing.T) {
		bad, _ := gemini.New(gemini.Config{APIKey: "wrong", Model: "gemini-test", APIURL: ts.URL})
		_, err := bad.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "Hello"}}}},
		})

		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "bad key" {
			t.Errorf("unexpected api error: %+v", apiErr)
		}
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.GenerateContent(ctx, &gemini.Request{})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}
