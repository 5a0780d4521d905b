package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartshop/api/pkg/logger"
)

// NewRouter wires every endpoint. Identity-scoped routes sit behind
// IdentityMiddleware; catalog browsing is anonymous.
func NewRouter(
	productHandler *ProductHandler,
	searchHandler *SearchHandler,
	recommendationHandler *RecommendationHandler,
	userHandler *UserHandler,
	log logger.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(log))

	identity := IdentityMiddleware()

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "UP"})
		})

		api.GET("/products", productHandler.ListProducts)
		api.GET("/categories", productHandler.ListCategories)
		api.GET("/stats", productHandler.Stats)

		api.GET("/products/search", identity, searchHandler.Search)
		api.GET("/recommendations", identity, recommendationHandler.Recommendations)

		user := api.Group("/user")
		user.Use(identity)
		{
			user.PUT("/profile", userHandler.RegisterProfile)
			user.GET("/history", userHandler.GetSearchHistory)
			user.DELETE("/history/clear", userHandler.ClearSearchHistory)
			user.POST("/interactions/view", userHandler.RecordView)
			user.POST("/interactions/purchase", userHandler.RecordPurchase)
			user.POST("/favorites", userHandler.AddFavoriteCategory)
		}
	}

	return router
}
