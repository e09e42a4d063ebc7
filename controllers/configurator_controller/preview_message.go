package configurator_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/models"
)

// PreviewMessage godoc
// @Summary Preview the order message
// @Description Render the chat-ready order summary for the current selection
// @Tags Configurator
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Session not found"
// @Failure 409 {object} models.ApiResponse "No base selected"
// @Router /configurator/sessions/{id}/message [get]
func PreviewMessage(c *gin.Context) {
	id, sel, ok := loadSession(c)
	if !ok {
		return
	}

	message, breakdown := orderMessage(sel)
	if message == "" {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Select a base before requesting an order message"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order message rendered", gin.H{
		"session_id": id,
		"message":    message,
		"pricing":    breakdown,
	}))
}
