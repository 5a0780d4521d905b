package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/smartshop/api/adapters/event"
	httpAdapter "github.com/smartshop/api/adapters/http"
	"github.com/smartshop/api/adapters/persistence"
	productUC "github.com/smartshop/api/internal/application/usecase/product"
	recommendUC "github.com/smartshop/api/internal/application/usecase/recommend"
	searchUC "github.com/smartshop/api/internal/application/usecase/search"
	userUC "github.com/smartshop/api/internal/application/usecase/user"
	"github.com/smartshop/api/internal/config"
	"github.com/smartshop/api/internal/domain/product"
	"github.com/smartshop/api/internal/domain/profile"
	"github.com/smartshop/api/internal/domain/recommend"
	"github.com/smartshop/api/pkg/logger"
	"github.com/smartshop/api/pkg/tracing"
)

func main() {
	fmt.Println("Start SmartShop API Server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "smartshop-api")
	if err != nil {
		appLogger.Fatal("cannot init tracer", err)
	}
	defer tp.Shutdown(context.Background())

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// The catalog is loaded once; everything served afterwards is in-memory.
	productSource := persistence.NewPostgresProductSource(dbPool, appLogger)
	products, err := productSource.LoadAll(context.Background())
	if err != nil {
		appLogger.Fatal("cannot load product catalog", err)
	}
	catalog, err := product.NewCatalog(products)
	if err != nil {
		appLogger.Fatal("product catalog is inconsistent", err)
	}
	appLogger.Info("Product catalog loaded",
		zap.Int("products", catalog.Len()),
		zap.Strings("categories", catalog.Categories()))

	profiles := profile.NewStore()
	engine := recommend.NewEngine(catalog, profiles)
	recCache := persistence.NewRedisRecommendationCache(redisClient, cfg.Recommend.CacheTTL, appLogger)

	// Use Cases
	recommendUseCase := recommendUC.NewRecommendUseCase(engine, recCache, appLogger)
	searchUseCase := searchUC.NewSearchUseCase(engine, profiles, kafkaClient, appLogger)
	listProductsUseCase := productUC.NewListProductsUseCase(catalog)
	listCategoriesUseCase := productUC.NewListCategoriesUseCase(catalog)
	statsUseCase := productUC.NewStatsUseCase(catalog, profiles)
	registerUseCase := userUC.NewRegisterProfileUseCase(profiles)
	getHistoryUseCase := userUC.NewGetSearchHistoryUseCase(profiles)
	clearHistoryUseCase := userUC.NewClearSearchHistoryUseCase(profiles, appLogger)
	recordUseCase := userUC.NewRecordInteractionUseCase(profiles, recCache, kafkaClient, appLogger)
	addFavoriteUseCase := userUC.NewAddFavoriteCategoryUseCase(profiles, recCache)

	// HTTP Handlers
	productHandler := httpAdapter.NewProductHandler(listProductsUseCase, listCategoriesUseCase, statsUseCase)
	searchHandler := httpAdapter.NewSearchHandler(searchUseCase, appLogger)
	recommendationHandler := httpAdapter.NewRecommendationHandler(recommendUseCase)
	userHandler := httpAdapter.NewUserHandler(registerUseCase, getHistoryUseCase, clearHistoryUseCase, recordUseCase, addFavoriteUseCase)

	router := httpAdapter.NewRouter(productHandler, searchHandler, recommendationHandler, userHandler, appLogger)

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
