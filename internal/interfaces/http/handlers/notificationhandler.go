package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tradepost/internal/application/notification/usecases"
	"tradepost/internal/interfaces/http/middleware"
	"tradepost/internal/shared/errors"
	"tradepost/internal/shared/logger"
	"tradepost/internal/shared/utils"
)

type NotificationHandler struct {
	listNotifications usecases.ListNotificationsExecutor
	getUnreadCount    usecases.GetUnreadCountExecutor
	markAsRead        usecases.MarkNotificationAsReadExecutor
	markAllAsRead     usecases.MarkAllAsReadExecutor
	logger            logger.Interface
}

func NewNotificationHandler(
	listNotifications usecases.ListNotificationsExecutor,
	getUnreadCount usecases.GetUnreadCountExecutor,
	markAsRead usecases.MarkNotificationAsReadExecutor,
	markAllAsRead usecases.MarkAllAsReadExecutor,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listNotifications: listNotifications,
		getUnreadCount:    getUnreadCount,
		markAsRead:        markAsRead,
		markAllAsRead:     markAllAsRead,
		logger:            logger,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	result, err := h.listNotifications.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	result, err := h.getUnreadCount.Execute(c.Request.Context(), usecases.GetUnreadCountQuery{
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid notification id"))
		return
	}

	if err := h.markAsRead.Execute(c.Request.Context(), usecases.MarkNotificationAsReadCommand{
		NotificationID: uint(id),
		UserID:         userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "Notification marked as read")
}

func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	if err := h.markAllAsRead.Execute(c.Request.Context(), usecases.MarkAllAsReadCommand{
		UserID: userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "All notifications marked as read")
}
