package configurator_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/models"
)

type selectBaseRequest struct {
	ItemID string `json:"item_id" binding:"required" example:"classic"`
}

// SelectBase godoc
// @Summary Select the base brownie
// @Description Replace the session's base with the given catalog item (single-select)
// @Tags Configurator
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body selectBaseRequest true "Base item"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Session or item not found"
// @Router /configurator/sessions/{id}/base [put]
func SelectBase(c *gin.Context) {
	var req selectBaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	if _, found := catalog.Base.Find(req.ItemID); !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Base item not found"))
		return
	}

	id, sel, ok := loadSession(c)
	if !ok {
		return
	}

	sel.SelectBase(req.ItemID)
	if !saveSession(c, id, sel) {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Base selected", sessionPayload(id, sel)))
}
