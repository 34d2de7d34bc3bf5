package assistant_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/japb1998/outreach-crm/pkg/assistant"
)

func completionResponse(content any) string {
	raw, _ := json.Marshal(content)
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": string(raw)}},
		},
	})
	return string(body)
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := assistant.NewClient(slog.Default(), "", "", "", 0); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestGenerateMessage(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse(map[string]any{
			"subject":     "Quick follow-up",
			"content":     "Hi Jane, great meeting you.",
			"tone":        "professional and warm",
			"suggestions": []string{"send in the morning"},
		})))
	}))
	defer srv.Close()

	client, err := assistant.NewClient(slog.Default(), "test-key", srv.URL, "test-model", time.Second)
	if err != nil {
		t.Fatalf("new client failed: %s", err)
	}

	result, err := client.GenerateMessage(context.Background(), assistant.GenerateRequest{
		ClientName:  "Jane Doe",
		Company:     "Acme Corp",
		Channel:     "email",
		MessageType: "follow-up",
		Context:     "met at the expo",
		Tone:        "professional",
	})
	if err != nil {
		t.Fatalf("generate failed: %s", err)
	}

	if gotPath != "/v1/chat/completions" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotReq["model"] != "test-model" {
		t.Fatalf("unexpected model %v", gotReq["model"])
	}
	if gotReq["temperature"] != 0.7 {
		t.Fatalf("unexpected temperature %v", gotReq["temperature"])
	}
	if result.Subject != "Quick follow-up" {
		t.Fatalf("unexpected subject %q", result.Subject)
	}
	if result.Content != "Hi Jane, great meeting you." {
		t.Fatalf("unexpected content %q", result.Content)
	}
}

func TestGenerateMessageDropsSubjectForLinkedIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse(map[string]any{
			"subject": "should be dropped",
			"content": "short note",
			"tone":    "casual",
		})))
	}))
	defer srv.Close()

	client, _ := assistant.NewClient(slog.Default(), "test-key", srv.URL, "", time.Second)

	result, err := client.GenerateMessage(context.Background(), assistant.GenerateRequest{
		ClientName:  "Jane",
		Channel:     "linkedin",
		MessageType: "introduction",
		Context:     "x",
		Tone:        "casual",
	})
	if err != nil {
		t.Fatalf("generate failed: %s", err)
	}
	if result.Subject != "" {
		t.Fatalf("subject should be empty for linkedin, got %q", result.Subject)
	}
	if result.Suggestions == nil {
		t.Fatal("suggestions should never be nil")
	}
}

func TestOptimizeMessage(t *testing.T) {
	var gotReq map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(completionResponse(map[string]any{
			"optimizedContent": "better draft",
			"improvements":     []string{"sharper call to action"},
		})))
	}))
	defer srv.Close()

	client, _ := assistant.NewClient(slog.Default(), "test-key", srv.URL, "", time.Second)

	result, err := client.OptimizeMessage(context.Background(), "draft", "email", "direct")
	if err != nil {
		t.Fatalf("optimize failed: %s", err)
	}
	if gotReq["temperature"] != 0.3 {
		t.Fatalf("unexpected temperature %v", gotReq["temperature"])
	}
	if result.OptimizedContent != "better draft" {
		t.Fatalf("unexpected content %q", result.OptimizedContent)
	}
}

func TestProviderErrorSurfacesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "rate limited"}`))
	}))
	defer srv.Close()

	client, _ := assistant.NewClient(slog.Default(), "test-key", srv.URL, "", time.Second)

	_, err := client.OptimizeMessage(context.Background(), "draft", "email", "")
	if err == nil {
		t.Fatal("expected error from provider")
	}
}
