package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewGenAIClientRequiresKey(t *testing.T) {
	client, err := NewGenAIClient(context.Background(), "", "gemini-2.0-flash", zap.NewNop())
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestNewGenAIClientKeepsModel(t *testing.T) {
	client, err := NewGenAIClient(context.Background(), "test-key", "gemini-2.0-flash", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", client.Model())
}
