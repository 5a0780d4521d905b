package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	productUC "github.com/smartshop/api/internal/application/usecase/product"
	"github.com/smartshop/api/pkg/apperror"
)

type ProductHandler struct {
	listProductsUseCase   *productUC.ListProductsUseCase
	listCategoriesUseCase *productUC.ListCategoriesUseCase
	statsUseCase          *productUC.StatsUseCase
}

func NewProductHandler(
	listUC *productUC.ListProductsUseCase,
	categoriesUC *productUC.ListCategoriesUseCase,
	statsUC *productUC.StatsUseCase,
) *ProductHandler {
	return &ProductHandler{
		listProductsUseCase:   listUC,
		listCategoriesUseCase: categoriesUC,
		statsUseCase:          statsUC,
	}
}

// parseFloatParam coerces an optional numeric query param, distinguishing
// "absent" from "present but malformed".
func parseFloatParam(c *gin.Context, name string) (*float64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperror.NewInvalidInput("'"+name+"' must be a number", err)
	}
	return &v, nil
}

func parseBoolParam(c *gin.Context, name string) (*bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperror.NewInvalidInput("'"+name+"' must be a boolean", err)
	}
	return &v, nil
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
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
	featured, err := parseBoolParam(c, "featured")
	if err != nil {
		c.Error(err)
		return
	}

	input := productUC.ListProductsInput{
		Category:     c.Query("category"),
		MaxPrice:     maxPrice,
		FeaturedOnly: featured,
	}
	if minRating != nil {
		input.MinRating = *minRating
	}

	output, err := h.listProductsUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": ToProductDTOs(output.Products),
		"count":    len(output.Products),
	})
}

func (h *ProductHandler) ListCategories(c *gin.Context) {
	output, err := h.listCategoriesUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": output.Categories,
		"count":      len(output.Categories),
	})
}

func (h *ProductHandler) Stats(c *gin.Context) {
	output, err := h.statsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": output})
}
