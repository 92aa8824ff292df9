package handlers

import (
	"github.com/gin-gonic/gin"

	"tradepost/internal/infrastructure/auth"
	"tradepost/internal/shared/errors"
	"tradepost/internal/shared/logger"
	"tradepost/internal/shared/utils"
)

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type AuthHandler struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthHandler(jwtService *auth.JWTService, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RefreshToken exchanges a valid refresh token for a fresh token pair. The old
// refresh token is rotated out.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for token refresh", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pair, err := h.jwtService.Refresh(req.RefreshToken)
	if err != nil {
		h.logger.Warnw("token refresh rejected", "error", err)
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid or expired refresh token"))
		return
	}

	utils.OKResponse(c, TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, "Token refreshed successfully")
}
