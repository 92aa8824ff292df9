package mappers

import (
	"tradepost/internal/domain/chat"
	"tradepost/internal/infrastructure/persistence/models"
)

// ChatMapper handles the conversion between chat domain entities and persistence models.
type ChatMapper interface {
	ConversationToModel(c *chat.Conversation) *models.ConversationModel
	ConversationToDomain(model *models.ConversationModel) (*chat.Conversation, error)
	MessageToModel(m *chat.Message) *models.MessageModel
	MessageToDomain(model *models.MessageModel) (*chat.Message, error)
}

type ChatMapperImpl struct{}

func NewChatMapper() ChatMapper {
	return &ChatMapperImpl{}
}

func (cm *ChatMapperImpl) ConversationToModel(c *chat.Conversation) *models.ConversationModel {
	low, high := c.Participants()
	return &models.ConversationModel{
		ID:            c.ID(),
		UserLowID:     low,
		UserHighID:    high,
		CreatedAt:     c.CreatedAt(),
		LastMessageAt: c.LastMessageAt(),
	}
}

func (cm *ChatMapperImpl) ConversationToDomain(model *models.ConversationModel) (*chat.Conversation, error) {
	return chat.ReconstructConversation(
		model.ID,
		model.UserLowID,
		model.UserHighID,
		model.CreatedAt,
		model.LastMessageAt,
	)
}

func (cm *ChatMapperImpl) MessageToModel(m *chat.Message) *models.MessageModel {
	return &models.MessageModel{
		ID:             m.ID(),
		ConversationID: m.ConversationID(),
		SenderID:       m.SenderID(),
		ReceiverID:     m.ReceiverID(),
		Content:        m.Content(),
		IsRead:         m.IsRead(),
		SentAt:         m.SentAt(),
	}
}

func (cm *ChatMapperImpl) MessageToDomain(model *models.MessageModel) (*chat.Message, error) {
	return chat.ReconstructMessage(
		model.ID,
		model.ConversationID,
		model.SenderID,
		model.ReceiverID,
		model.Content,
		model.IsRead,
		model.SentAt,
	)
}
