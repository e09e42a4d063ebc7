package configurator_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/models"
)

// GetSession godoc
// @Summary Get a configurator session
// @Description Get the current selection with its price breakdown
// @Tags Configurator
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Session not found"
// @Router /configurator/sessions/{id} [get]
func GetSession(c *gin.Context) {
	id, sel, ok := loadSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session fetched", sessionPayload(id, sel)))
}
