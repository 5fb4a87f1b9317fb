package server

import (
	"art-auction/internal/auth"
	bidding "art-auction/internal/biddingService"
	catalog "art-auction/internal/catalogService"
	"art-auction/internal/notify"
	bidhandler "art-auction/services/bidding/handler"
	cataloghandler "art-auction/services/catalog/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter configures all Gin routes for the application. A nil verifier leaves
// every route open.
func SetupRouter(biddingService *bidding.BiddingService, catalogService *catalog.CatalogService, hub *notify.Hub, verifier *auth.Verifier) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	biddingHandler := bidhandler.NewBiddingHandler(biddingService, hub)
	catalogHandler := cataloghandler.NewCatalogHandler(catalogService)

	router.GET("/live", biddingHandler.LiveHandler)

	api := router.Group("", IdentityMiddleware(verifier))
	admin := RequireAdmin(verifier)

	bids := api.Group("/bids")
	{
		bids.POST("", RequireUser(verifier), biddingHandler.PlaceBidHandler)
		bids.GET("", biddingHandler.ListBidsHandler)
		bids.GET("/latest", biddingHandler.LatestBidsHandler)
		bids.GET("/:product_id", biddingHandler.TopBidsHandler)
		bids.DELETE("", admin, biddingHandler.DeleteBidsHandler)
	}

	products := api.Group("/products")
	{
		products.POST("", admin, catalogHandler.CreateProductHandler)
		products.GET("", admin, catalogHandler.ListProductsHandler)
		products.GET("/list", catalogHandler.ListActiveProductsHandler)
		products.GET("/:id", catalogHandler.GetProductHandler)
		products.PUT("/:id", admin, catalogHandler.UpdateProductHandler)
		products.DELETE("", admin, catalogHandler.DeleteProductsHandler)
	}

	artists := api.Group("/artists")
	{
		artists.POST("", admin, catalogHandler.CreateArtistHandler)
		artists.GET("", admin, catalogHandler.ListArtistsHandler)
		artists.GET("/list", catalogHandler.ListActiveArtistsHandler)
		artists.GET("/featured", catalogHandler.ListFeaturedArtistsHandler)
		artists.GET("/:id", catalogHandler.GetArtistHandler)
		artists.PUT("/:id", admin, catalogHandler.UpdateArtistHandler)
		artists.DELETE("", admin, catalogHandler.DeleteArtistsHandler)
	}

	return router
}
