// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(url string) *Client {
	return NewClientWithConfig(&ClientConfig{BaseURL: url})
}

func TestBaseURLFromHost(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"127.0.0.1:11434", "http://127.0.0.1:11434"},
		{"192.168.0.2:11434", "http://192.168.0.2:11434"},
		{"http://10.0.0.5:11434", "http://10.0.0.5:11434"},
		{"https://ollama.lan", "https://ollama.lan"},
		{" 127.0.0.1:11434/ ", "http://127.0.0.1:11434"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := BaseURLFromHost(tt.host); got != tt.want {
			t.Errorf("BaseURLFromHost(%q) = %q, want %q", tt.host, got, tt.want)
		}
	}
}

func TestListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("path = %q, want /api/tags", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("method = %q, want GET", r.Method)
		}
		json.NewEncoder(w).Encode(ListModelsResponse{
			Models: []ModelInfo{{Name: "llama3.2"}, {Name: "qwen2.5:7b"}},
		})
	}))
	defer srv.Close()

	models, err := testClient(srv.URL).ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels failed: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("got %d models, want 2", len(models))
	}
	if models[0].Name != "llama3.2" {
		t.Errorf("models[0].Name = %q, want 'llama3.2'", models[0].Name)
	}
}

func TestChat_SendsFullHistoryNonStreaming(t *testing.T) {
	var got ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("path = %q, want /api/chat", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("request body did not decode: %v", err)
		}
		json.NewEncoder(w).Encode(ChatResponse{
			Message: Message{Role: "assistant", Content: "hi"},
			Done:    true,
		})
	}))
	defer srv.Close()

	messages := []Message{
		NewUserMessage("hello"),
		NewAssistantMessage("hey"),
		NewUserMessage("how are you?"),
	}
	resp, err := testClient(srv.URL).Chat(context.Background(), "llama3.2", messages)
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	if got.Model != "llama3.2" {
		t.Errorf("request model = %q, want 'llama3.2'", got.Model)
	}
	if got.Stream {
		t.Error("request stream = true, want false")
	}
	if len(got.Messages) != 3 {
		t.Errorf("request carried %d messages, want full history of 3", len(got.Messages))
	}
	if resp.Message.Content != "hi" {
		t.Errorf("response content = %q, want 'hi'", resp.Message.Content)
	}
}

func TestChatWithOptions_SendsSamplingParams(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&raw)
		json.NewEncoder(w).Encode(ChatResponse{Message: Message{Role: "assistant", Content: "A Name"}})
	}))
	defer srv.Close()

	opts := &Options{Temperature: 0.2, TopP: 0.5, NumPredict: 12, RepeatPenalty: 1.3, PresencePenalty: 1.5}
	_, err := testClient(srv.URL).ChatWithOptions(context.Background(), "llama3.2",
		[]Message{NewUserMessage("hi")}, opts)
	if err != nil {
		t.Fatalf("ChatWithOptions failed: %v", err)
	}

	options, ok := raw["options"].(map[string]any)
	if !ok {
		t.Fatalf("request carried no options object: %v", raw)
	}
	if options["temperature"] != 0.2 {
		t.Errorf("temperature = %v, want 0.2", options["temperature"])
	}
	if options["num_predict"] != float64(12) {
		t.Errorf("num_predict = %v, want 12", options["num_predict"])
	}
}

func TestChat_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(apiError{Error: "model failed to load"})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Chat(context.Background(), "llama3.2", []Message{NewUserMessage("hi")})
	if err == nil {
		t.Fatal("Chat on 500 returned nil error")
	}

	var clientErr *ClientError
	if !errors.As(err, &clientErr) || clientErr.Type != ErrTypeInvalidResponse {
		t.Errorf("error = %v, want ClientError with ErrTypeInvalidResponse", err)
	}
	if clientErr.Message != "model failed to load" {
		t.Errorf("error message = %q, want the endpoint's own message", clientErr.Message)
	}
}

func TestChat_ConnectionRefused(t *testing.T) {
	// Grab a port with nothing listening on it
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := testClient(url).Chat(context.Background(), "llama3.2", []Message{NewUserMessage("hi")})
	if !IsNotRunning(err) {
		t.Errorf("error = %v, want not-running", err)
	}
}

func TestCheckRunning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Ollama is running"))
	}))
	defer srv.Close()

	if err := testClient(srv.URL).CheckRunning(context.Background()); err != nil {
		t.Errorf("CheckRunning = %v, want nil", err)
	}
}
