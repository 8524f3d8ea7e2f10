package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Flame02op/multiplayer-bingo-app/game"
	"github.com/Flame02op/multiplayer-bingo-app/utils/logger"
)

// Announcer turns a drawn number into a short caller's phrase via an
// OpenAI-style chat completions endpoint. It is strictly advisory: every
// failure path falls back to a locally computed phrase and the caller never
// sees an error.
type Announcer struct {
	httpClient *http.Client
	apiKey     string
	apiURL     string
	model      string
}

func NewAnnouncer(apiKey, apiURL, model string) *Announcer {
	return &Announcer{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
	}
}

func (a *Announcer) IsAvailable() bool {
	return a.apiKey != "" && a.apiURL != ""
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const announcerSystemPrompt = `You are a lively bingo hall caller. Given the number just drawn, respond with ONE short, fun announcement line (under 15 words). No quotes, no markdown, just the line.`

// Announce returns a phrase for the drawn number. drawnCount is how many
// numbers have been called this run and closeLines is how many lines across
// all players are one mark away from winning.
func (a *Announcer) Announce(number, drawnCount, closeLines int) string {
	text, err := a.generate(number, drawnCount, closeLines)
	if err != nil {
		logger.Debugf("announcer: falling back for %d: %v", number, err)
		return FallbackPhrase(number, drawnCount)
	}
	return text
}

func (a *Announcer) generate(number, drawnCount, closeLines int) (string, error) {
	if !a.IsAvailable() {
		return "", fmt.Errorf("announcer is not configured")
	}

	prompt := fmt.Sprintf(
		"Number drawn: %s-%d. It is call %d of 75.", game.Letter(number), number, drawnCount)
	if closeLines > 0 {
		prompt += fmt.Sprintf(" %d lines in the room are one number away from bingo.", closeLines)
	}

	reqBody := chatRequest{
		Model: a.model,
		Messages: []chatMessage{
			{Role: "system", Content: announcerSystemPrompt},
			{Role: "user", Content: prompt},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", a.apiURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse API response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	text := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("blank announcement from API")
	}
	return text, nil
}

// Traditional calls for the numbers that have one.
var notableCalls = map[int]string{
	1:  "Kelly's eye, number one!",
	2:  "One little duck, number two!",
	7:  "Lucky seven!",
	8:  "Garden gate, number eight!",
	11: "Legs eleven!",
	13: "Unlucky for some, thirteen!",
	22: "Two little ducks, twenty-two!",
	44: "Droopy drawers, forty-four!",
	50: "Half a century, fifty!",
	66: "Clickety click, sixty-six!",
	75: "Big Daddy, seventy-five!",
}

// FallbackPhrase is the deterministic stand-in used whenever the external
// announcer is missing, slow, or broken.
func FallbackPhrase(number, drawnCount int) string {
	if call, ok := notableCalls[number]; ok {
		return call
	}
	return fmt.Sprintf("%s-%d, that's call number %d!", game.Letter(number), number, drawnCount)
}
