// Package chat contains the conversation and message entities. A conversation
// is an unordered pair of users, unique per pair, created lazily on the first
// message between them.
package chat

import (
	"fmt"
	"time"
)

type Conversation struct {
	id            uint
	userLowID     uint
	userHighID    uint
	createdAt     time.Time
	lastMessageAt time.Time
}

// NormalizePair orders two user ids so the (low, high) pair is unique
// regardless of who initiated the conversation.
func NormalizePair(a, b uint) (low, high uint) {
	if a < b {
		return a, b
	}
	return b, a
}

func NewConversation(userA, userB uint) (*Conversation, error) {
	if userA == 0 || userB == 0 {
		return nil, fmt.Errorf("both participant IDs are required")
	}
	if userA == userB {
		return nil, fmt.Errorf("a conversation requires two distinct users")
	}

	low, high := NormalizePair(userA, userB)
	now := time.Now().UTC()
	return &Conversation{
		userLowID:     low,
		userHighID:    high,
		createdAt:     now,
		lastMessageAt: now,
	}, nil
}

func ReconstructConversation(id uint, userLowID, userHighID uint, createdAt, lastMessageAt time.Time) (*Conversation, error) {
	if id == 0 {
		return nil, fmt.Errorf("conversation ID cannot be zero")
	}
	if userLowID == 0 || userHighID == 0 || userLowID == userHighID {
		return nil, fmt.Errorf("invalid participant pair")
	}

	return &Conversation{
		id:            id,
		userLowID:     userLowID,
		userHighID:    userHighID,
		createdAt:     createdAt,
		lastMessageAt: lastMessageAt,
	}, nil
}

func (c *Conversation) ID() uint {
	return c.id
}

func (c *Conversation) Participants() (uint, uint) {
	return c.userLowID, c.userHighID
}

func (c *Conversation) HasParticipant(userID uint) bool {
	return c.userLowID == userID || c.userHighID == userID
}

// Counterpart returns the other participant relative to userID.
func (c *Conversation) Counterpart(userID uint) uint {
	if c.userLowID == userID {
		return c.userHighID
	}
	return c.userLowID
}

func (c *Conversation) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Conversation) LastMessageAt() time.Time {
	return c.lastMessageAt
}

func (c *Conversation) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("conversation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("conversation ID cannot be zero")
	}
	c.id = id
	return nil
}

// TouchLastMessage records that a message was just added.
func (c *Conversation) TouchLastMessage(at time.Time) {
	c.lastMessageAt = at
}
