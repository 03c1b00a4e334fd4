package utils

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// EstimateTokens approximates a token count at four characters per token.
func EstimateTokens(text string) int {
	return len(text) / 4
}

// TokenCounter counts tokens with a tiktoken encoding, falling back to
// EstimateTokens when no encoding is available.
type TokenCounter struct {
	model    string
	logger   Logger
	once     sync.Once
	encoding *tiktoken.Tiktoken
}

// NewTokenCounter returns a counter for model. The encoding is loaded lazily
// on first use; an empty model always uses the heuristic.
func NewTokenCounter(model string, logger Logger) *TokenCounter {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &TokenCounter{model: model, logger: logger}
}

func (c *TokenCounter) load() {
	if c.model == "" {
		return
	}
	enc, err := tiktoken.EncodingForModel(c.model)
	if err != nil {
		c.logger.Warn("Failed to get encoding for model, falling back to estimate", "model", c.model, "error", err)
		return
	}
	c.encoding = enc
}

// Count returns the number of tokens in text.
func (c *TokenCounter) Count(text string) int {
	c.once.Do(c.load)
	if c.encoding == nil {
		return EstimateTokens(text)
	}
	return len(c.encoding.Encode(text, nil, nil))
}

// Model returns the model name the counter was built for.
func (c *TokenCounter) Model() string {
	return c.model
}
