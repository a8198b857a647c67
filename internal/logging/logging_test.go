package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidLevels(t *testing.T) {
	assert.Equal(t, []string{"info", "debug", "error", "warn"}, ValidLevels())
}

func TestLogger(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := NewLogger(Options{Level: "info"})
	sub := logger.Subscribe(ctx)

	logger.Debug("not recorded")
	logger.Info("restored tab order", "session", "default", "moves", 2)

	got := <-sub
	assert.Equal(t, "INFO", got.Level)
	assert.Equal(t, "restored tab order", got.Message)
	assert.Equal(t, []Attr{
		{Key: "session", Value: "default"},
		{Key: "moves", Value: "2"},
	}, got.Attributes)

	msgs := logger.List()
	require.Len(t, msgs, 1)
	assert.Equal(t, uint(0), msgs[0].Serial)
}

func TestLogger_FullSubscriber(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := NewLogger(Options{Level: "info"})
	sub := logger.Subscribe(ctx)

	// Log more than a subscription can buffer without draining it.
	const bufferSize = 1024
	for i := 0; i < bufferSize+100; i++ {
		logger.Info("opened file", "n", i)
	}

	// The full subscriber is dropped and its channel closed.
	var received int
	for range sub {
		received++
	}
	assert.Equal(t, bufferSize, received)
	assert.Len(t, logger.List(), bufferSize+100)
}
