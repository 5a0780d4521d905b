package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	searchUC "github.com/smartshop/api/internal/application/usecase/search"
	"github.com/smartshop/api/pkg/apperror"
	"github.com/smartshop/api/pkg/logger"
)

type SearchHandler struct {
	searchUseCase *searchUC.SearchUseCase
	logger        logger.Logger
}

func NewSearchHandler(uc *searchUC.SearchUseCase, log logger.Logger) *SearchHandler {
	return &SearchHandler{
		searchUseCase: uc,
		logger:        log,
	}
}

func (h *SearchHandler) Search(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user identity not found"})
		return
	}

	maxPrice, err := parseFloatParam(c, "max_price")
	if err != nil {
		c.Error(err)
		return
	}
	minRating, err := parseFloatParam(c, "min_rating")
	if err != nil {
		c.Error(err)
		return
	}

	query := c.Query("q")
	if query == "" {
		c.Error(apperror.NewInvalidInput("'q' query param is required", nil))
		return
	}

	input := searchUC.SearchInput{
		UserID:   userID,
		Query:    query,
		Category: c.Query("category"),
		MaxPrice: maxPrice,
	}
	if minRating != nil {
		input.MinRating = *minRating
	}

	output, err := h.searchUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"results": ToProductDTOs(output.Results),
		"count":   len(output.Results),
	})
}
