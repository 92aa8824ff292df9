package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tradepost/internal/shared/errors"
)

func TestMarkMessagesReadUseCase_Execute(t *testing.T) {
	convRepo := new(mockConversationRepo)
	msgRepo := new(mockMessageRepo)
	counts := new(mockUnreadPusher)

	conv := testConversation(t)
	convRepo.On("FindByID", mock.Anything, conv.ID()).Return(conv, nil)
	msgRepo.On("MarkReadByConversation", mock.Anything, conv.ID(), recipientID).Return(nil)
	counts.On("Execute", mock.Anything, recipientID).Return()

	uc := NewMarkMessagesReadUseCase(convRepo, msgRepo, counts, nopLogger{})

	err := uc.Execute(context.Background(), MarkMessagesReadCommand{
		ConversationID: conv.ID(),
		ReaderID:       recipientID,
	})

	require.NoError(t, err)
	counts.AssertExpectations(t)
	msgRepo.AssertExpectations(t)
}

func TestMarkMessagesReadUseCase_NotParticipant(t *testing.T) {
	convRepo := new(mockConversationRepo)
	msgRepo := new(mockMessageRepo)
	counts := new(mockUnreadPusher)

	conv := testConversation(t)
	convRepo.On("FindByID", mock.Anything, conv.ID()).Return(conv, nil)

	uc := NewMarkMessagesReadUseCase(convRepo, msgRepo, counts, nopLogger{})

	err := uc.Execute(context.Background(), MarkMessagesReadCommand{
		ConversationID: conv.ID(),
		ReaderID:       99,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	msgRepo.AssertNotCalled(t, "MarkReadByConversation", mock.Anything, mock.Anything, mock.Anything)
	counts.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestMarkMessagesReadUseCase_RepoFailureSkipsCountsPush(t *testing.T) {
	convRepo := new(mockConversationRepo)
	msgRepo := new(mockMessageRepo)
	counts := new(mockUnreadPusher)

	conv := testConversation(t)
	convRepo.On("FindByID", mock.Anything, conv.ID()).Return(conv, nil)
	msgRepo.On("MarkReadByConversation", mock.Anything, conv.ID(), recipientID).Return(fmt.Errorf("deadlock"))

	uc := NewMarkMessagesReadUseCase(convRepo, msgRepo, counts, nopLogger{})

	err := uc.Execute(context.Background(), MarkMessagesReadCommand{
		ConversationID: conv.ID(),
		ReaderID:       recipientID,
	})

	require.Error(t, err)
	counts.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
