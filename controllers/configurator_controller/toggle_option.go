package configurator_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/models"
)

type toggleOptionRequest struct {
	Group  string `json:"group" binding:"required,oneof=toppings extras" example:"toppings"`
	ItemID string `json:"item_id" binding:"required" example:"walnuts"`
}

// ToggleOption godoc
// @Summary Toggle a topping or add-on
// @Description Remove the item if selected, otherwise add it while the group is under its cap. An add at the cap leaves the selection unchanged — the storefront disables those controls, and the response always carries the resulting state.
// @Tags Configurator
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body toggleOptionRequest true "Group and item"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Session or item not found"
// @Router /configurator/sessions/{id}/options [post]
func ToggleOption(c *gin.Context) {
	var req toggleOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	group, valid := models.ParseOptionGroup(req.Group)
	if !valid {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown option group"))
		return
	}

	category := catalog.Category(group)
	if _, found := category.Find(req.ItemID); !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Item not found in "+group.String()))
		return
	}

	id, sel, ok := loadSession(c)
	if !ok {
		return
	}

	sel.ToggleOption(group, req.ItemID, category.MaxSelections)
	if !saveSession(c, id, sel) {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Selection updated", sessionPayload(id, sel)))
}
