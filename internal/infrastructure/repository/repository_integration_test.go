package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tradepost/internal/domain/chat"
	"tradepost/internal/domain/notification"
	notifvo "tradepost/internal/domain/notification/valueobjects"
	"tradepost/internal/domain/order"
	"tradepost/internal/infrastructure/persistence/models"
	"tradepost/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.ListingModel{},
		&models.OrderModel{},
		&models.ReviewModel{},
		&models.ConversationModel{},
		&models.MessageModel{},
		&models.NotificationModel{},
	))

	return db
}

func createTestOrder(t *testing.T, repo order.Repository, number string) *order.Order {
	t.Helper()

	o, err := order.NewOrder(5, 10, 20, 120.50, "Central Station", nil, "")
	require.NoError(t, err)
	require.NoError(t, o.SetNumber(number))
	require.NoError(t, repo.Create(context.Background(), o))
	return o
}

func TestOrderRepository_CreateAndFind(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t))
	ctx := context.Background()

	o := createTestOrder(t, repo, "ORD-20260830-AAAA0001")
	assert.NotZero(t, o.ID())

	found, err := repo.FindByID(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, o.Number(), found.Number())
	assert.Equal(t, o.BuyerID(), found.BuyerID())
	assert.Equal(t, o.TotalAmount(), found.TotalAmount())
	assert.Equal(t, 1, found.Version())

	byNumber, err := repo.FindByNumber(ctx, o.Number())
	require.NoError(t, err)
	assert.Equal(t, o.ID(), byNumber.ID())

	_, err = repo.FindByID(ctx, 9999)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestOrderRepository_OptimisticUpdate(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t))
	ctx := context.Background()

	created := createTestOrder(t, repo, "ORD-20260830-AAAA0002")

	loaded, err := repo.FindByID(ctx, created.ID())
	require.NoError(t, err)
	loadedVersion := loaded.Version()
	require.NoError(t, loaded.Confirm(20))

	require.NoError(t, repo.Update(ctx, loaded, loadedVersion))

	// The stored row moved to version 2; a writer still holding version 1 loses.
	stale, err := repo.FindByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, stale.Version())
	assert.True(t, stale.Status().IsConfirmed())

	require.NoError(t, stale.Complete(10))
	err = repo.Update(ctx, stale, loadedVersion)
	require.Error(t, err)
	assert.True(t, errors.IsStateConflictError(err))

	// With the current version the same write goes through.
	require.NoError(t, repo.Update(ctx, stale, 2))
}

func TestOrderRepository_Delete(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t))
	ctx := context.Background()

	o := createTestOrder(t, repo, "ORD-20260830-AAAA0003")

	require.NoError(t, repo.Delete(ctx, o.ID()))

	_, err := repo.FindByID(ctx, o.ID())
	assert.True(t, errors.IsNotFoundError(err))

	err = repo.Delete(ctx, o.ID())
	assert.True(t, errors.IsNotFoundError(err))
}

func TestConversationRepository_FindOrCreateByPair(t *testing.T) {
	repo := NewConversationRepository(setupTestDB(t))
	ctx := context.Background()

	first, err := repo.FindOrCreateByPair(ctx, 7, 3)
	require.NoError(t, err)
	assert.NotZero(t, first.ID())

	// The reversed pair resolves to the same conversation.
	second, err := repo.FindOrCreateByPair(ctx, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, first.ID(), second.ID())

	low, high := second.Participants()
	assert.Equal(t, uint(3), low)
	assert.Equal(t, uint(7), high)
}

func TestMessageRepository_ReadFlow(t *testing.T) {
	db := setupTestDB(t)
	convRepo := NewConversationRepository(db)
	msgRepo := NewMessageRepository(db)
	ctx := context.Background()

	conv, err := convRepo.FindOrCreateByPair(ctx, 3, 7)
	require.NoError(t, err)

	for _, content := range []string{"first", "second"} {
		m, err := chat.NewMessage(conv.ID(), 3, 7, content)
		require.NoError(t, err)
		require.NoError(t, msgRepo.Create(ctx, m))
		assert.NotZero(t, m.ID())
	}

	unread, err := msgRepo.CountUnreadByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	// The sender has nothing unread.
	unread, err = msgRepo.CountUnreadByUserID(ctx, 3)
	require.NoError(t, err)
	assert.Zero(t, unread)

	messages, total, err := msgRepo.ListByConversationID(ctx, conv.ID(), 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, messages, 2)

	require.NoError(t, msgRepo.MarkReadByConversation(ctx, conv.ID(), 7))

	unread, err = msgRepo.CountUnreadByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestNotificationRepository_Flow(t *testing.T) {
	repo := NewNotificationRepository(setupTestDB(t))
	ctx := context.Background()

	orderID := uint(42)
	n, err := notification.NewNotification(7, notifvo.NotificationTypeOrder,
		"Order confirmed", "The seller confirmed your order.", "/orders/42",
		notification.Related{OrderID: &orderID})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, n))
	assert.NotZero(t, n.ID())

	found, err := repo.FindByID(ctx, n.ID())
	require.NoError(t, err)
	assert.Equal(t, n.Title(), found.Title())
	require.NotNil(t, found.Related().OrderID)
	assert.Equal(t, orderID, *found.Related().OrderID)

	count, err := repo.CountUnreadByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	found.MarkAsRead()
	require.NoError(t, repo.Update(ctx, found))

	count, err = repo.CountUnreadByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestReviewRepository_UniquePerReviewer(t *testing.T) {
	db := setupTestDB(t)
	orderRepo := NewOrderRepository(db)
	reviewRepo := NewReviewRepository(db)
	ctx := context.Background()

	o := createTestOrder(t, orderRepo, "ORD-20260830-AAAA0004")

	review, err := order.NewReview(o.ID(), 10, 5, "smooth handoff")
	require.NoError(t, err)
	require.NoError(t, reviewRepo.Create(ctx, review))

	exists, err := reviewRepo.ExistsByOrderAndReviewer(ctx, o.ID(), 10)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = reviewRepo.ExistsByOrderAndReviewer(ctx, o.ID(), 20)
	require.NoError(t, err)
	assert.False(t, exists)

	// The unique (order, reviewer) index rejects a second review.
	duplicate, err := order.NewReview(o.ID(), 10, 1, "changed my mind")
	require.NoError(t, err)
	assert.Error(t, reviewRepo.Create(ctx, duplicate))
}
