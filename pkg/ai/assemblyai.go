package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/talentlens/talentlens/pkg/config"
)

// AssemblyAIClient is a minimal AssemblyAI client
type AssemblyAIClient struct {
	apiKey       string
	baseURL      string
	pollInterval time.Duration
	pollTimeout  time.Duration
	client       *http.Client
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey, baseURL string
	pollInterval := 3 * time.Second
	pollTimeout := 5 * time.Minute
	if cfg != nil {
		apiKey = cfg.APIKey
		baseURL = cfg.BaseURL
		if cfg.PollInterval > 0 {
			pollInterval = cfg.PollInterval
		}
		if cfg.PollTimeout > 0 {
			pollTimeout = cfg.PollTimeout
		}
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	if baseURL == "" {
		baseURL = "https://api.assemblyai.com/v2"
	}
	return &AssemblyAIClient{
		apiKey:       apiKey,
		baseURL:      baseURL,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

// TranscribeRequest is payload for /v2/transcript
type TranscribeRequest struct {
	AudioURL          string `json:"audio_url"`
	SpeakerLabels     bool   `json:"speaker_labels,omitempty"`
	LanguageDetection bool   `json:"language_detection,omitempty"`
}

// TranscribeResponse is minimal response
type TranscribeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Text   string `json:"text"`
	Error  string `json:"error"`
}

// SubmitAudio requests AssemblyAI to transcribe an external audio URL.
// Returns the transcript job id on success. Transient submission errors
// are retried with exponential backoff.
func (c *AssemblyAIClient) SubmitAudio(ctx context.Context, recordingURL string) (string, error) {
	payload := TranscribeRequest{
		AudioURL:          recordingURL,
		SpeakerLabels:     false,
		LanguageDetection: true,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	var jobID string
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/transcript", bytes.NewReader(b))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("assemblyai returned status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("assemblyai returned status %d", resp.StatusCode))
		}

		var tr TranscribeResponse
		if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
			return backoff.Permanent(err)
		}
		jobID = tr.ID
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, bo); err != nil {
		return "", err
	}
	return jobID, nil
}

// GetTranscript fetches the current state of a transcript job.
func (c *AssemblyAIClient) GetTranscript(ctx context.Context, jobID string) (*TranscribeResponse, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/transcript/"+jobID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("assemblyai returned status %d", resp.StatusCode)
	}

	var tr TranscribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

// Transcribe submits an audio URL and polls until the transcript completes,
// errors out, or the poll timeout elapses. Returns the transcript text.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, recordingURL string) (string, error) {
	jobID, err := c.SubmitAudio(ctx, recordingURL)
	if err != nil {
		return "", fmt.Errorf("failed to submit audio for transcription: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.pollTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("transcription polling timed out: %w", ctx.Err())
		case <-ticker.C:
			tr, err := c.GetTranscript(ctx, jobID)
			if err != nil {
				// Transient fetch errors surface on the next tick.
				continue
			}
			switch tr.Status {
			case "completed":
				return tr.Text, nil
			case "error":
				return "", fmt.Errorf("transcription failed: %s", tr.Error)
			}
		}
	}
}
