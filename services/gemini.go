package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// NoItineraryText is returned when the model answers without any text.
const NoItineraryText = "No itinerary generated."

// ErrKind classifies why a generation call failed, so the orchestration
// layer can decide per step whether to degrade or abort.
type ErrKind int

const (
	ErrKindTransport ErrKind = iota
	ErrKindAuth
	ErrKindMalformed
)

type GenerateError struct {
	Kind ErrKind
	Err  error
}

func (e *GenerateError) Error() string { return e.Err.Error() }
func (e *GenerateError) Unwrap() error { return e.Err }

// ─── Gemini Client ────────────────────────────────────────────────────────────

type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	c := &GeminiClient{
		apiKey:  apiKey,
		model:   "gemini-1.5-flash",
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}

	if apiKey != "" {
		log.Println("✅ Gemini initialized with model:", c.model)
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set — itineraries will use fallback text")
	}
	return c
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateItinerary sends the prompt to the generateContent endpoint and
// returns the model's text. An empty response yields NoItineraryText with
// no error; auth and transport failures propagate as *GenerateError.
func (c *GeminiClient) GenerateItinerary(prompt string) (string, error) {
	if c.apiKey == "" {
		return "", &GenerateError{Kind: ErrKindAuth, Err: fmt.Errorf("gemini API key not configured")}
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", &GenerateError{Kind: ErrKindMalformed, Err: err}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", &GenerateError{Kind: ErrKindTransport, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &GenerateError{Kind: ErrKindTransport, Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", &GenerateError{
			Kind: ErrKindAuth,
			Err:  fmt.Errorf("gemini auth error (%d): %s", resp.StatusCode, string(body)),
		}
	case resp.StatusCode != http.StatusOK:
		return "", &GenerateError{
			Kind: ErrKindTransport,
			Err:  fmt.Errorf("gemini API error (%d): %s", resp.StatusCode, string(body)),
		}
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", &GenerateError{
			Kind: ErrKindMalformed,
			Err:  fmt.Errorf("failed to parse gemini response: %w", err),
		}
	}

	if len(geminiResp.Candidates) == 0 {
		return NoItineraryText, nil
	}

	var sb strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	if sb.Len() == 0 {
		return NoItineraryText, nil
	}
	return sb.String(), nil
}
