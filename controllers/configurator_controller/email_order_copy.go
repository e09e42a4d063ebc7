package configurator_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/models"
	"github.com/wizreet/cocobakes/services"
)

type emailOrderCopyRequest struct {
	Email string `json:"email" binding:"required,email" example:"sita@example.com"`
}

// EmailOrderCopy godoc
// @Summary Email a copy of the order
// @Description Send the customer the order message with the order slip PDF attached. Delivery happens asynchronously; the endpoint only confirms the send was queued.
// @Tags Configurator
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body emailOrderCopyRequest true "Recipient"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Session not found"
// @Failure 409 {object} models.ApiResponse "No base selected"
// @Failure 503 {object} models.ApiResponse "Email not configured"
// @Router /configurator/sessions/{id}/email [post]
func EmailOrderCopy(c *gin.Context) {
	var req emailOrderCopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	id, sel, ok := loadSession(c)
	if !ok {
		return
	}

	message, breakdown := orderMessage(sel)
	if message == "" {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Select a base before emailing the order"))
		return
	}

	resendClient, err := services.NewResendClient()
	if err != nil {
		log.Printf("[configurator.email] email service unavailable: %v", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Email service not configured"))
		return
	}

	pdfBuffer := buildOrderSlipPDF(sel, breakdown)

	// Send asynchronously; the customer gets immediate feedback and a failed
	// send only shows up in the server log.
	go func() {
		emailData := services.OrderCopyEmailData{
			ToEmail:    req.Email,
			Message:    message,
			PDFContent: pdfBuffer.Bytes(),
		}
		if err := resendClient.SendOrderCopyEmail(emailData); err != nil {
			log.Printf("[configurator.email] failed to send order copy for session %s: %v", id, err)
		} else {
			log.Printf("[configurator.email] order copy sent to %s for session %s", req.Email, id)
		}
	}()

	recordDispatch(c, id, sel, breakdown, "email")

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order copy email queued", gin.H{
		"session_id": id,
		"email":      req.Email,
	}))
}
