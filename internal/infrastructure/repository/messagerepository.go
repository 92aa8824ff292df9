package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tradepost/internal/domain/chat"
	"tradepost/internal/infrastructure/persistence/mappers"
	"tradepost/internal/infrastructure/persistence/models"
)

type MessageRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ChatMapper
}

func NewMessageRepository(db *gorm.DB) chat.MessageRepository {
	return &MessageRepositoryImpl{
		db:     db,
		mapper: mappers.NewChatMapper(),
	}
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, m *chat.Message) error {
	model := r.mapper.MessageToModel(m)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	if err := m.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set message ID: %w", err)
	}

	return nil
}

func (r *MessageRepositoryImpl) ListByConversationID(ctx context.Context, conversationID uint, limit, offset int) ([]*chat.Message, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.MessageModel{}).
		Where("conversation_id = ?", conversationID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	query = query.Order("sent_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var modelList []models.MessageModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*chat.Message, len(modelList))
	for i := range modelList {
		m, err := r.mapper.MessageToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		messages[i] = m
	}

	return messages, total, nil
}

func (r *MessageRepositoryImpl) MarkReadByConversation(ctx context.Context, conversationID, readerID uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.MessageModel{}).
		Where("conversation_id = ? AND receiver_id = ? AND is_read = ?", conversationID, readerID, false).
		Update("is_read", true).Error; err != nil {
		return fmt.Errorf("failed to mark messages as read: %w", err)
	}
	return nil
}

func (r *MessageRepositoryImpl) CountUnreadByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.MessageModel{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}
