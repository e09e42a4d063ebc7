package configurator_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/models"
)

// DispatchClipboard godoc
// @Summary Get the clipboard payload for the order
// @Description Return the plain-text order message for the client to copy. The copied flag mirrors the adapter's success report; it is false only when the order has no base, which this endpoint already refuses.
// @Tags Configurator
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Session not found"
// @Failure 409 {object} models.ApiResponse "No base selected"
// @Router /configurator/sessions/{id}/dispatch/clipboard [get]
func DispatchClipboard(c *gin.Context) {
	id, sel, ok := loadSession(c)
	if !ok {
		return
	}

	message, breakdown := orderMessage(sel)
	payload, ok := dispatcher.ClipboardPayload(message)
	if !ok {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Select a base before dispatching the order"))
		return
	}

	recordDispatch(c, id, sel, breakdown, "clipboard")

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Clipboard payload ready", gin.H{
		"session_id": id,
		"payload":    payload,
		"pricing":    breakdown,
	}))
}
