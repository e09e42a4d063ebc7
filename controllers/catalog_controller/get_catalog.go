package catalog_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/models"
)

var catalog *models.Catalog

// Init hands the loaded registry to the handlers. Called once from main
// after the catalog is read; the registry never changes afterwards.
func Init(c *models.Catalog) {
	catalog = c
}

// GetCatalog godoc
// @Summary Get the full builder catalog
// @Description Get the base, topping and add-on categories plus the quantity options with their preset discounts
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/catalog [get]
func GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog fetched", catalog))
}
