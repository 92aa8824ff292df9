package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	m, err := NewMessage(1, 3, 7, "is the bike still available?")

	require.NoError(t, err)
	assert.Equal(t, uint(1), m.ConversationID())
	assert.Equal(t, uint(3), m.SenderID())
	assert.Equal(t, uint(7), m.ReceiverID())
	assert.False(t, m.IsRead())
	assert.False(t, m.SentAt().IsZero())
}

func TestNewMessage_Validation(t *testing.T) {
	t.Run("empty content", func(t *testing.T) {
		_, err := NewMessage(1, 3, 7, "")
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("content too long", func(t *testing.T) {
		_, err := NewMessage(1, 3, 7, strings.Repeat("x", MaxContentLength+1))
		assert.Error(t, err)

		_, err = NewMessage(1, 3, 7, strings.Repeat("x", MaxContentLength))
		assert.NoError(t, err)
	})

	t.Run("self message", func(t *testing.T) {
		_, err := NewMessage(1, 3, 3, "hi")
		assert.Error(t, err)
	})

	t.Run("missing ids", func(t *testing.T) {
		_, err := NewMessage(0, 3, 7, "hi")
		assert.Error(t, err)
		_, err = NewMessage(1, 0, 7, "hi")
		assert.Error(t, err)
	})
}

func TestMessage_MarkAsRead(t *testing.T) {
	m, err := NewMessage(1, 3, 7, "hi")
	require.NoError(t, err)

	m.MarkAsRead()
	assert.True(t, m.IsRead())

	// One-directional, repeated calls stay read.
	m.MarkAsRead()
	assert.True(t, m.IsRead())
}
