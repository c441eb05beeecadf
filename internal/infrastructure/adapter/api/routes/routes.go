package routes

import (
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/api/handler"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/api/middleware"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/auth"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	verifier *auth.TokenVerifier,
	profiles usecase.ProfileUseCase,
	healthHandler *handler.HealthHandler,
	profileHandler *handler.ProfileHandler,
	loyaltyHandler *handler.LoyaltyHandler,
	recommendationHandler *handler.RecommendationHandler,
	logger coreport.Logger,
) {
	router.GET("/health", healthHandler.Health)

	authenticated := router.Group("/")
	authenticated.Use(middleware.Authentication(verifier, logger))
	{
		authenticated.POST("/auth/sync", profileHandler.SyncUser)
		authenticated.GET("/profile", profileHandler.GetProfile)
		authenticated.PUT("/profile", profileHandler.SaveProfile)

		authenticated.GET("/coupons", loyaltyHandler.ListCoupons)
		authenticated.GET("/me/coupons", loyaltyHandler.ListOwnedCoupons)
		authenticated.POST("/coupons/redeem", loyaltyHandler.RedeemCoupon)
		authenticated.GET("/me/points", loyaltyHandler.GetPoints)
		authenticated.GET("/me/points/reconcile", loyaltyHandler.ReconcilePoints)

		authenticated.GET("/recommendations", recommendationHandler.ListRecommendations)
		authenticated.GET("/recommendations/service-types", recommendationHandler.ListServiceTypes)
		authenticated.GET("/recommendations/:id/comments", recommendationHandler.ListComments)

		// Earning and spending points requires a complete profile
		gated := authenticated.Group("/")
		gated.Use(middleware.RequireCompleteProfile(profiles, logger))
		{
			gated.POST("/coupons/:couponId/purchase", loyaltyHandler.PurchaseCoupon)
			gated.POST("/recommendations", recommendationHandler.SubmitRecommendation)
			gated.POST("/recommendations/card", recommendationHandler.UploadCard)
			gated.POST("/recommendations/:id/comments", recommendationHandler.AddComment)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
