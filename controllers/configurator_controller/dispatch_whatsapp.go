package configurator_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/models"
)

// DispatchWhatsApp godoc
// @Summary Get the WhatsApp deep link for the order
// @Description Build the wa.me link with the order message prefilled. Refused while no base is selected so an empty message never reaches the channel.
// @Tags Configurator
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Session not found"
// @Failure 409 {object} models.ApiResponse "No base selected"
// @Router /configurator/sessions/{id}/dispatch/whatsapp [get]
func DispatchWhatsApp(c *gin.Context) {
	id, sel, ok := loadSession(c)
	if !ok {
		return
	}

	message, breakdown := orderMessage(sel)
	link, ok := dispatcher.WhatsAppLink(message)
	if !ok {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Select a base before dispatching the order"))
		return
	}

	recordDispatch(c, id, sel, breakdown, "whatsapp")
	log.Printf("[configurator.dispatch] whatsapp link issued for session %s (total NPR %d)", id, breakdown.FinalPrice)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "WhatsApp link ready", gin.H{
		"session_id": id,
		"link":       link,
		"message":    message,
		"pricing":    breakdown,
	}))
}
