package configurator_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/models"
)

// DeleteSession godoc
// @Summary Drop a configurator session
// @Description Discard the session immediately instead of waiting for its TTL
// @Tags Configurator
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /configurator/sessions/{id} [delete]
func DeleteSession(c *gin.Context) {
	id := c.Param("id")
	if err := sessions.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete session"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session deleted", gin.H{"session_id": id}))
}
