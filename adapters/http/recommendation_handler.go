package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	recommendUC "github.com/smartshop/api/internal/application/usecase/recommend"
	"github.com/smartshop/api/internal/domain/recommend"
	"github.com/smartshop/api/pkg/apperror"
)

type RecommendationHandler struct {
	recommendUseCase *recommendUC.RecommendUseCase
}

func NewRecommendationHandler(uc *recommendUC.RecommendUseCase) *RecommendationHandler {
	return &RecommendationHandler{recommendUseCase: uc}
}

func (h *RecommendationHandler) Recommendations(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user identity not found"})
		return
	}

	limit := recommend.DefaultTopN
	if raw, exists := c.GetQuery("limit"); exists {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.Error(apperror.NewInvalidInput("'limit' must be an integer", err))
			return
		}
		limit = v
	}

	output, err := h.recommendUseCase.Execute(c.Request.Context(), recommendUC.RecommendInput{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":         userID,
		"recommendations": ToProductDTOs(output.Products),
		"count":           len(output.Products),
	})
}
