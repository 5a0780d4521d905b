package http

import (
	"github.com/smartshop/api/internal/domain/product"
	"github.com/smartshop/api/internal/domain/profile"
)

type ProductDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Featured    bool    `json:"featured"`
}

func ToProductDTO(p product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Rating:      p.Rating,
		Featured:    p.Featured,
	}
}

func ToProductDTOs(items []product.Product) []ProductDTO {
	dtos := make([]ProductDTO, len(items))
	for i, p := range items {
		dtos[i] = ToProductDTO(p)
	}
	return dtos
}

type ProfileDTO struct {
	UserID             string   `json:"user_id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	BrowsingHistory    []string `json:"browsing_history"`
	PurchaseHistory    []string `json:"purchase_history"`
	FavoriteCategories []string `json:"favorite_categories"`
	SearchHistory      []string `json:"search_history"`
}

func ToProfileDTO(p profile.UserProfile) ProfileDTO {
	return ProfileDTO{
		UserID:             p.UserID,
		Name:               p.Name,
		Email:              p.Email,
		BrowsingHistory:    p.BrowsingHistory,
		PurchaseHistory:    p.PurchaseHistory,
		FavoriteCategories: p.FavoriteCategories,
		SearchHistory:      p.SearchHistory,
	}
}

type RegisterProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RecordInteractionRequest struct {
	ProductID string `json:"product_id"`
}

type AddFavoriteRequest struct {
	Category string `json:"category"`
}
