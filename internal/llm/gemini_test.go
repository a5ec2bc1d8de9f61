package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGeminiProvider_Generate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/models/gemini-1.5-flash:generateContent") {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("Expected key query param test-key, got %s", r.URL.Query().Get("key"))
		}

		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Decode request: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "test prompt" {
			t.Errorf("Unexpected request contents: %+v", req.Contents)
		}
		if req.SystemInstruction == nil {
			t.Error("Expected a system instruction")
		}

		_, _ = w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"role": "model",
						"parts": [{"text": "* Assumption one\n* Assumption two"}]
					},
					"finishReason": "STOP"
				}
			]
		}`))
	}))
	defer server.Close()

	provider, err := NewGeminiProvider(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gemini-1.5-flash",
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	got, err := provider.Generate(context.Background(), "test prompt")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "* Assumption one\n* Assumption two" {
		t.Errorf("Unexpected completion: %q", got)
	}
}

func TestGeminiProvider_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"code": 429, "message": "Resource exhausted", "status": "RESOURCE_EXHAUSTED"}}`))
	}))
	defer server.Close()

	provider, err := NewGeminiProvider(Config{APIKey: "test-key", BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Expected error for API failure")
	}
	if !strings.Contains(err.Error(), "Resource exhausted") {
		t.Errorf("Expected API message in error, got %v", err)
	}
}

func TestGeminiProvider_Generate_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	provider, err := NewGeminiProvider(Config{APIKey: "test-key", BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	if _, err := provider.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("Expected error for empty candidates")
	}
}

func TestGeminiProvider_RequiresAPIKey(t *testing.T) {
	if _, err := NewGeminiProvider(Config{}); err == nil {
		t.Fatal("Expected error for missing API key")
	}
}
