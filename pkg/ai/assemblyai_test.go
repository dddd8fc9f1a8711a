package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/talentlens/talentlens/pkg/config"
)

func TestSubmitAudio_Success(t *testing.T) {
	// Mock AssemblyAI server
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.Header.Get("Authorization") != "test-key" {
			t.Fatalf("missing api key header")
		}
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload["audio_url"] != "http://example.com/answer.webm" {
			t.Fatalf("unexpected audio_url %v", payload["audio_url"])
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"id": "transcript-123", "status": "processing"})
	}))
	defer ts.Close()

	client := NewAssemblyAIClient(&config.AssemblyAIConfig{APIKey: "test-key", BaseURL: ts.URL})

	id, err := client.SubmitAudio(context.Background(), "http://example.com/answer.webm")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if id != "transcript-123" {
		t.Fatalf("unexpected id %s", id)
	}
}

func TestSubmitAudio_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := NewAssemblyAIClient(&config.AssemblyAIConfig{APIKey: "bad-key", BaseURL: ts.URL})

	if _, err := client.SubmitAudio(context.Background(), "http://example.com/answer.webm"); err == nil {
		t.Fatal("expected error for 401 response")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected 1 call for permanent error, got %d", got)
	}
}

func TestTranscribe_PollsUntilCompleted(t *testing.T) {
	var polls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			json.NewEncoder(w).Encode(map[string]string{"id": "transcript-9", "status": "queued"})
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/transcript/transcript-9") {
			t.Fatalf("unexpected poll path %s", r.URL.Path)
		}
		n := atomic.AddInt32(&polls, 1)
		if n < 3 {
			json.NewEncoder(w).Encode(map[string]string{"id": "transcript-9", "status": "processing"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"id":     "transcript-9",
			"status": "completed",
			"text":   "I led the migration of our billing service.",
		})
	}))
	defer ts.Close()

	client := NewAssemblyAIClient(&config.AssemblyAIConfig{
		APIKey:       "test-key",
		BaseURL:      ts.URL,
		PollInterval: 5 * time.Millisecond,
		PollTimeout:  2 * time.Second,
	})

	text, err := client.Transcribe(context.Background(), "http://example.com/answer.webm")
	if err != nil {
		t.Fatalf("transcribe failed: %v", err)
	}
	if text != "I led the migration of our billing service." {
		t.Fatalf("unexpected transcript %q", text)
	}
	if atomic.LoadInt32(&polls) < 3 {
		t.Fatalf("expected at least 3 polls, got %d", polls)
	}
}

func TestTranscribe_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			json.NewEncoder(w).Encode(map[string]string{"id": "transcript-err", "status": "queued"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"id":     "transcript-err",
			"status": "error",
			"error":  "audio file unreachable",
		})
	}))
	defer ts.Close()

	client := NewAssemblyAIClient(&config.AssemblyAIConfig{
		APIKey:       "test-key",
		BaseURL:      ts.URL,
		PollInterval: 5 * time.Millisecond,
		PollTimeout:  2 * time.Second,
	})

	_, err := client.Transcribe(context.Background(), "http://example.com/answer.webm")
	if err == nil || !strings.Contains(err.Error(), "audio file unreachable") {
		t.Fatalf("expected provider error, got %v", err)
	}
}
