package configurator_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/models"
)

// ResetSession godoc
// @Summary Reset a configurator session
// @Description Return the selection to its initial state: no base, no add-ons, default quantity
// @Tags Configurator
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Session not found"
// @Router /configurator/sessions/{id}/reset [post]
func ResetSession(c *gin.Context) {
	id, sel, ok := loadSession(c)
	if !ok {
		return
	}

	sel.Reset(catalog.Quantity)
	if !saveSession(c, id, sel) {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session reset", sessionPayload(id, sel)))
}
