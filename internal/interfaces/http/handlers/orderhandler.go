package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tradepost/internal/application/order/usecases"
	"tradepost/internal/interfaces/http/middleware"
	"tradepost/internal/shared/errors"
	"tradepost/internal/shared/logger"
	"tradepost/internal/shared/utils"
)

type CreateOrderRequest struct {
	ListingID       uint       `json:"listing_id" validate:"required"`
	MeetingLocation string     `json:"meeting_location" validate:"max=255"`
	MeetingTime     *time.Time `json:"meeting_time"`
	Notes           string     `json:"notes" validate:"max=1000"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type AddReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

type OrderHandler struct {
	createOrder   usecases.CreateOrderExecutor
	confirmOrder  usecases.ConfirmOrderExecutor
	cancelOrder   usecases.CancelOrderExecutor
	rejectOrder   usecases.RejectOrderExecutor
	completeOrder usecases.CompleteOrderExecutor
	refundOrder   usecases.RefundOrderExecutor
	deleteOrder   usecases.DeleteOrderExecutor
	addReview     usecases.AddReviewExecutor
	getOrder      usecases.GetOrderExecutor
	listOrders    usecases.ListOrdersExecutor
	logger        logger.Interface
}

func NewOrderHandler(
	createOrder usecases.CreateOrderExecutor,
	confirmOrder usecases.ConfirmOrderExecutor,
	cancelOrder usecases.CancelOrderExecutor,
	rejectOrder usecases.RejectOrderExecutor,
	completeOrder usecases.CompleteOrderExecutor,
	refundOrder usecases.RefundOrderExecutor,
	deleteOrder usecases.DeleteOrderExecutor,
	addReview usecases.AddReviewExecutor,
	getOrder usecases.GetOrderExecutor,
	listOrders usecases.ListOrdersExecutor,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		createOrder:   createOrder,
		confirmOrder:  confirmOrder,
		cancelOrder:   cancelOrder,
		rejectOrder:   rejectOrder,
		completeOrder: completeOrder,
		refundOrder:   refundOrder,
		deleteOrder:   deleteOrder,
		addReview:     addReview,
		getOrder:      getOrder,
		listOrders:    listOrders,
		logger:        logger,
	}
}

func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createOrder.Execute(c.Request.Context(), usecases.CreateOrderCommand{
		BuyerID:         userID,
		ListingID:       req.ListingID,
		MeetingLocation: req.MeetingLocation,
		MeetingTime:     req.MeetingTime,
		Notes:           req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Order created successfully")
}

func (h *OrderHandler) Confirm(c *gin.Context) {
	userID, orderID, ok := h.actorAndOrder(c)
	if !ok {
		return
	}

	result, err := h.confirmOrder.Execute(c.Request.Context(), usecases.ConfirmOrderCommand{
		OrderID: orderID,
		ActorID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "Order confirmed")
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	userID, orderID, ok := h.actorAndOrder(c)
	if !ok {
		return
	}

	var req CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.cancelOrder.Execute(c.Request.Context(), usecases.CancelOrderCommand{
		OrderID: orderID,
		ActorID: userID,
		Reason:  req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "Order cancelled")
}

func (h *OrderHandler) Reject(c *gin.Context) {
	userID, orderID, ok := h.actorAndOrder(c)
	if !ok {
		return
	}

	var req CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.rejectOrder.Execute(c.Request.Context(), usecases.RejectOrderCommand{
		OrderID: orderID,
		ActorID: userID,
		Reason:  req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "Order rejected")
}

func (h *OrderHandler) Complete(c *gin.Context) {
	userID, orderID, ok := h.actorAndOrder(c)
	if !ok {
		return
	}

	result, err := h.completeOrder.Execute(c.Request.Context(), usecases.CompleteOrderCommand{
		OrderID: orderID,
		ActorID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "Order completed")
}

func (h *OrderHandler) Refund(c *gin.Context) {
	userID, orderID, ok := h.actorAndOrder(c)
	if !ok {
		return
	}

	result, err := h.refundOrder.Execute(c.Request.Context(), usecases.RefundOrderCommand{
		OrderID: orderID,
		ActorID: userID,
		IsAdmin: c.GetBool("is_admin"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "Order refunded")
}

func (h *OrderHandler) Delete(c *gin.Context) {
	userID, orderID, ok := h.actorAndOrder(c)
	if !ok {
		return
	}

	if err := h.deleteOrder.Execute(c.Request.Context(), usecases.DeleteOrderCommand{
		OrderID: orderID,
		ActorID: userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "Order deleted")
}

func (h *OrderHandler) AddReview(c *gin.Context) {
	userID, orderID, ok := h.actorAndOrder(c)
	if !ok {
		return
	}

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addReview.Execute(c.Request.Context(), usecases.AddReviewCommand{
		OrderID:    orderID,
		ReviewerID: userID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Review added")
}

func (h *OrderHandler) Get(c *gin.Context) {
	userID, orderID, ok := h.actorAndOrder(c)
	if !ok {
		return
	}

	result, err := h.getOrder.Execute(c.Request.Context(), usecases.GetOrderQuery{
		OrderID: orderID,
		UserID:  userID,
		IsAdmin: c.GetBool("is_admin"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	result, err := h.listOrders.Execute(c.Request.Context(), usecases.ListOrdersQuery{
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

func (h *OrderHandler) actorAndOrder(c *gin.Context) (userID, orderID uint, ok bool) {
	userID, exists := middleware.UserID(c)
	if !exists {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return 0, 0, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid order id"))
		return 0, 0, false
	}

	return userID, uint(id), true
}
