package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tradepost/internal/domain/chat"
	"tradepost/internal/infrastructure/persistence/mappers"
	"tradepost/internal/infrastructure/persistence/models"
	"tradepost/internal/shared/errors"
)

type ConversationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ChatMapper
}

func NewConversationRepository(db *gorm.DB) chat.ConversationRepository {
	return &ConversationRepositoryImpl{
		db:     db,
		mapper: mappers.NewChatMapper(),
	}
}

func (r *ConversationRepositoryImpl) FindOrCreateByPair(ctx context.Context, userA, userB uint) (*chat.Conversation, error) {
	low, high := chat.NormalizePair(userA, userB)

	var model models.ConversationModel
	err := r.db.WithContext(ctx).
		Where("user_low_id = ? AND user_high_id = ?", low, high).
		First(&model).Error
	if err == nil {
		return r.mapper.ConversationToDomain(&model)
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}

	conv, err := chat.NewConversation(userA, userB)
	if err != nil {
		return nil, err
	}

	model = *r.mapper.ConversationToModel(conv)
	if createErr := r.db.WithContext(ctx).Create(&model).Error; createErr != nil {
		// A concurrent first message for the same pair may have won the race on
		// the unique pair index; fall back to the row it created.
		var existing models.ConversationModel
		if findErr := r.db.WithContext(ctx).
			Where("user_low_id = ? AND user_high_id = ?", low, high).
			First(&existing).Error; findErr == nil {
			return r.mapper.ConversationToDomain(&existing)
		}
		return nil, fmt.Errorf("failed to create conversation: %w", createErr)
	}

	if err := conv.SetID(model.ID); err != nil {
		return nil, fmt.Errorf("failed to set conversation ID: %w", err)
	}

	return conv, nil
}

func (r *ConversationRepositoryImpl) FindByID(ctx context.Context, id uint) (*chat.Conversation, error) {
	var model models.ConversationModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("conversation not found")
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}

	return r.mapper.ConversationToDomain(&model)
}

func (r *ConversationRepositoryImpl) ListByUserID(ctx context.Context, userID uint) ([]*chat.Conversation, error) {
	var modelList []models.ConversationModel

	if err := r.db.WithContext(ctx).
		Where("user_low_id = ? OR user_high_id = ?", userID, userID).
		Order("last_message_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	conversations := make([]*chat.Conversation, len(modelList))
	for i := range modelList {
		conv, err := r.mapper.ConversationToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		conversations[i] = conv
	}

	return conversations, nil
}

func (r *ConversationRepositoryImpl) TouchLastMessage(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.ConversationModel{}).
		Where("id = ?", id).
		Update("last_message_at", time.Now().UTC()).Error; err != nil {
		return fmt.Errorf("failed to touch conversation: %w", err)
	}
	return nil
}
