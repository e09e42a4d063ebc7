package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/controllers/catalog_controller"
	"github.com/wizreet/cocobakes/controllers/offer_controller"
)

// SetupStorefrontRoutes registers the public read-only menu endpoints.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")

	catalog := store.Group("/catalog")
	{
		catalog.GET("", catalog_controller.GetCatalog)              // full registry
		catalog.GET("/:category", catalog_controller.GetCategory)  // base | toppings | extras
	}

	store.GET("/offers", offer_controller.GetOffers) // banner content
}
