package catalog_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/models"
)

// GetCategory godoc
// @Summary Get one builder category
// @Description Get a single category (base, toppings or extras) with its options
// @Tags Catalog
// @Produce json
// @Param category path string true "Category key" Enums(base, toppings, extras)
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Unknown category"
// @Router /store/catalog/{category} [get]
func GetCategory(c *gin.Context) {
	var category *models.CatalogCategory
	switch c.Param("category") {
	case "base":
		category = &catalog.Base
	case "toppings":
		category = &catalog.Toppings
	case "extras":
		category = &catalog.Extras
	default:
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Unknown catalog category"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched", category))
}
