package usecases

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	rtdto "tradepost/internal/application/realtime/dto"
	"tradepost/internal/domain/chat"
	"tradepost/internal/shared/errors"
)

const (
	senderID    uint = 3
	recipientID uint = 7
)

func testConversation(t *testing.T) *chat.Conversation {
	t.Helper()

	conv, err := chat.NewConversation(senderID, recipientID)
	require.NoError(t, err)
	require.NoError(t, conv.SetID(11))
	return conv
}

func persistWithID(id uint) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		msg := args.Get(1).(*chat.Message)
		_ = msg.SetID(id)
	}
}

func TestSendMessageUseCase_RecipientOnline(t *testing.T) {
	convRepo := new(mockConversationRepo)
	msgRepo := new(mockMessageRepo)
	notifier := new(mockOfflineNotifier)
	presence := newMockPresence(senderID, recipientID)

	conv := testConversation(t)
	convRepo.On("FindOrCreateByPair", mock.Anything, senderID, recipientID).Return(conv, nil)
	convRepo.On("TouchLastMessage", mock.Anything, conv.ID()).Return(nil)
	msgRepo.On("Create", mock.Anything, mock.Anything).Run(persistWithID(101)).Return(nil)

	uc := NewSendMessageUseCase(convRepo, msgRepo, presence, notifier, passthroughSanitizer{}, nopLogger{})

	result, err := uc.Execute(context.Background(), SendMessageCommand{
		SenderID:    senderID,
		SenderName:  "User #3",
		RecipientID: recipientID,
		Content:     "is the bike still available?",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(101), result.ID)
	assert.Equal(t, conv.ID(), result.ConversationID)

	// Recipient gets the delivery, sender gets the ack, nobody is notified.
	require.Len(t, presence.pushed[recipientID], 1)
	assert.Equal(t, rtdto.EventReceiveMessage, presence.pushed[recipientID][0].Type)
	require.Len(t, presence.pushed[senderID], 1)
	assert.Equal(t, rtdto.EventMessageSent, presence.pushed[senderID][0].Type)
	notifier.AssertNotCalled(t, "NotifyNewMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendMessageUseCase_RecipientOffline(t *testing.T) {
	convRepo := new(mockConversationRepo)
	msgRepo := new(mockMessageRepo)
	notifier := new(mockOfflineNotifier)
	presence := newMockPresence(senderID) // recipient not connected

	conv := testConversation(t)
	convRepo.On("FindOrCreateByPair", mock.Anything, senderID, recipientID).Return(conv, nil)
	convRepo.On("TouchLastMessage", mock.Anything, conv.ID()).Return(nil)
	msgRepo.On("Create", mock.Anything, mock.Anything).Run(persistWithID(101)).Return(nil)
	notifier.On("NotifyNewMessage", mock.Anything, recipientID, "User #3", "hello there", conv.ID()).Return()

	uc := NewSendMessageUseCase(convRepo, msgRepo, presence, notifier, passthroughSanitizer{}, nopLogger{})

	_, err := uc.Execute(context.Background(), SendMessageCommand{
		SenderID:    senderID,
		SenderName:  "User #3",
		RecipientID: recipientID,
		Content:     "hello there",
	})

	require.NoError(t, err)
	assert.Empty(t, presence.pushed[recipientID])
	// The ack still reaches the sender.
	require.Len(t, presence.pushed[senderID], 1)
	assert.Equal(t, rtdto.EventMessageSent, presence.pushed[senderID][0].Type)
	notifier.AssertExpectations(t)
}

func TestSendMessageUseCase_OfflinePreviewIsTruncated(t *testing.T) {
	convRepo := new(mockConversationRepo)
	msgRepo := new(mockMessageRepo)
	notifier := new(mockOfflineNotifier)
	presence := newMockPresence()

	conv := testConversation(t)
	long := strings.Repeat("a", 500)
	wantPreview := strings.Repeat("a", messagePreviewLimit) + "..."

	convRepo.On("FindOrCreateByPair", mock.Anything, senderID, recipientID).Return(conv, nil)
	convRepo.On("TouchLastMessage", mock.Anything, conv.ID()).Return(nil)
	msgRepo.On("Create", mock.Anything, mock.Anything).Run(persistWithID(101)).Return(nil)
	notifier.On("NotifyNewMessage", mock.Anything, recipientID, "User #3", wantPreview, conv.ID()).Return()

	uc := NewSendMessageUseCase(convRepo, msgRepo, presence, notifier, passthroughSanitizer{}, nopLogger{})

	_, err := uc.Execute(context.Background(), SendMessageCommand{
		SenderID:    senderID,
		SenderName:  "User #3",
		RecipientID: recipientID,
		Content:     long,
	})

	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestSendMessageUseCase_PersistenceFailureAborts(t *testing.T) {
	convRepo := new(mockConversationRepo)
	msgRepo := new(mockMessageRepo)
	notifier := new(mockOfflineNotifier)
	presence := newMockPresence(senderID, recipientID)

	conv := testConversation(t)
	convRepo.On("FindOrCreateByPair", mock.Anything, senderID, recipientID).Return(conv, nil)
	msgRepo.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("disk full"))

	uc := NewSendMessageUseCase(convRepo, msgRepo, presence, notifier, passthroughSanitizer{}, nopLogger{})

	_, err := uc.Execute(context.Background(), SendMessageCommand{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     "hello",
	})

	require.Error(t, err)
	assert.Empty(t, presence.pushed, "nothing may be delivered when persistence fails")
	notifier.AssertNotCalled(t, "NotifyNewMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	convRepo.AssertNotCalled(t, "TouchLastMessage", mock.Anything, mock.Anything)
}

func TestSendMessageUseCase_Validation(t *testing.T) {
	uc := NewSendMessageUseCase(new(mockConversationRepo), new(mockMessageRepo),
		newMockPresence(), new(mockOfflineNotifier), passthroughSanitizer{}, nopLogger{})

	tests := []struct {
		name string
		cmd  SendMessageCommand
	}{
		{"missing recipient", SendMessageCommand{SenderID: senderID, Content: "hi"}},
		{"self message", SendMessageCommand{SenderID: senderID, RecipientID: senderID, Content: "hi"}},
		{"empty content", SendMessageCommand{SenderID: senderID, RecipientID: recipientID, Content: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestSendMessageUseCase_SanitizedToEmpty(t *testing.T) {
	stripAll := sanitizerFunc(func(string) string { return "" })
	uc := NewSendMessageUseCase(new(mockConversationRepo), new(mockMessageRepo),
		newMockPresence(), new(mockOfflineNotifier), stripAll, nopLogger{})

	_, err := uc.Execute(context.Background(), SendMessageCommand{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     "<script>alert(1)</script>",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

type sanitizerFunc func(string) string

func (f sanitizerFunc) CleanText(input string) string {
	return f(input)
}
