package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userUC "github.com/smartshop/api/internal/application/usecase/user"
	"github.com/smartshop/api/internal/domain/interaction"
	"github.com/smartshop/api/pkg/apperror"
)

type UserHandler struct {
	registerUseCase    *userUC.RegisterProfileUseCase
	getHistoryUseCase  *userUC.GetSearchHistoryUseCase
	clearHistoryUC     *userUC.ClearSearchHistoryUseCase
	recordUseCase      *userUC.RecordInteractionUseCase
	addFavoriteUseCase *userUC.AddFavoriteCategoryUseCase
}

func NewUserHandler(
	registerUC *userUC.RegisterProfileUseCase,
	getHistoryUC *userUC.GetSearchHistoryUseCase,
	clearHistoryUC *userUC.ClearSearchHistoryUseCase,
	recordUC *userUC.RecordInteractionUseCase,
	addFavoriteUC *userUC.AddFavoriteCategoryUseCase,
) *UserHandler {
	return &UserHandler{
		registerUseCase:    registerUC,
		getHistoryUseCase:  getHistoryUC,
		clearHistoryUC:     clearHistoryUC,
		recordUseCase:      recordUC,
		addFavoriteUseCase: addFavoriteUC,
	}
}

func (h *UserHandler) RegisterProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user identity not found"})
		return
	}

	var req RegisterProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	output, err := h.registerUseCase.Execute(c.Request.Context(), userUC.RegisterProfileInput{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *UserHandler) GetSearchHistory(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user identity not found"})
		return
	}

	output, err := h.getHistoryUseCase.Execute(c.Request.Context(), userUC.GetSearchHistoryInput{UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":        userID,
		"search_history": output.Queries,
		"count":          len(output.Queries),
	})
}

func (h *UserHandler) ClearSearchHistory(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user identity not found"})
		return
	}

	output, err := h.clearHistoryUC.Execute(c.Request.Context(), userUC.ClearSearchHistoryInput{UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cleared": output.Cleared})
}

func (h *UserHandler) RecordView(c *gin.Context) {
	h.recordInteraction(c, interaction.TypeView)
}

func (h *UserHandler) RecordPurchase(c *gin.Context) {
	h.recordInteraction(c, interaction.TypePurchase)
}

func (h *UserHandler) recordInteraction(c *gin.Context, t interaction.Type) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user identity not found"})
		return
	}

	var req RecordInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	err := h.recordUseCase.Execute(c.Request.Context(), userUC.RecordInteractionInput{
		UserID:    userID,
		ProductID: req.ProductID,
		Type:      t,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"recorded": string(t)})
}

func (h *UserHandler) AddFavoriteCategory(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user identity not found"})
		return
	}

	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	err := h.addFavoriteUseCase.Execute(c.Request.Context(), userUC.AddFavoriteCategoryInput{
		UserID:   userID,
		Category: req.Category,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"added": req.Category})
}
