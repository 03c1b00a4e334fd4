package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teilomillet/promptgen/config"
	"github.com/teilomillet/promptgen/techniques"
)

func TestGenerateBatch(t *testing.T) {
	e := newTestEngine(t, config.SetMaxConcurrency(2), config.SetRateLimit(1000, 5))

	reqs := []Request{
		{Text: "Explain how DNS resolution works", Techniques: []string{techniques.ChainOfThought}},
		{Text: ""},
		{Text: "Review the onboarding flow", Techniques: []string{techniques.RolePlay}},
		{Text: "Summarize the incident report", Techniques: []string{"unknown"}},
	}

	results := e.GenerateBatch(context.Background(), reqs)
	require.Len(t, results, len(reqs))

	for i, res := range results {
		assert.Equal(t, i, res.Index)
	}

	require.NoError(t, results[0].Err)
	assert.Equal(t, chainOfThoughtDNS, results[0].Response.Text)

	assert.ErrorIs(t, results[1].Err, ErrInvalidRequest)
	assert.Nil(t, results[1].Response)

	require.NoError(t, results[2].Err)
	assert.Equal(t, reqs[2].Text, results[2].Response.OriginalText)

	assert.ErrorIs(t, results[3].Err, ErrInvalidRequest)
}

func TestGenerateBatchEmpty(t *testing.T) {
	e := newTestEngine(t)
	assert.Empty(t, e.GenerateBatch(context.Background(), nil))
}

func TestGenerateBatchCancelledWhileRateLimited(t *testing.T) {
	e := newTestEngine(t, config.SetRateLimit(0.001, 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := e.GenerateBatch(ctx, []Request{
		{Text: "Explain how DNS resolution works"},
		{Text: "Explain how TLS handshakes work"},
	})
	for _, res := range results {
		assert.ErrorIs(t, res.Err, context.Canceled)
		assert.Nil(t, res.Response)
	}
}
