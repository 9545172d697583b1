package api

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/charmbracelet/log"
)

// DefaultQuestions are shown when the backend cannot supply ticker-specific
// suggestions. They match the backend's own fallback set.
var DefaultQuestions = []string{
	"What is the company's revenue?",
	"What is the company's net income?",
	"What is the company's cash flow?",
}

// questionsEnvelope mirrors the FAQ endpoint's response.
type questionsEnvelope struct {
	Data []string `json:"data"`
}

// SuggestedQuestions GETs /api/{ticker}/faq. Any failure falls back to
// DefaultQuestions, so the caller always gets something to offer.
func (c *HTTPClient) SuggestedQuestions(ctx context.Context, ticker string) []string {
	url := fmt.Sprintf("%s/api/%s/faq", c.baseURL, ticker)
	body, err := c.get(ctx, url)
	if err != nil {
		log.Debug("faq fetch failed, using defaults", "ticker", ticker, "error", err)
		return defaultQuestions()
	}

	var envelope questionsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Data) == 0 {
		log.Debug("faq payload unusable, using defaults", "ticker", ticker)
		return defaultQuestions()
	}

	return envelope.Data
}

func defaultQuestions() []string {
	out := make([]string, len(DefaultQuestions))
	copy(out, DefaultQuestions)
	return out
}
