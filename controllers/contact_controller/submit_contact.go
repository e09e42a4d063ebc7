package contact_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/models"
	"github.com/wizreet/cocobakes/services"
)

// SubmitContact godoc
// @Summary Submit the contact form
// @Description Forward a storefront contact-form message to the bakery inbox. Delivery happens asynchronously.
// @Tags Contact
// @Accept json
// @Produce json
// @Param body body models.ContactRequest true "Contact message"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 503 {object} models.ApiResponse "Email not configured"
// @Router /contact [post]
func SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	resendClient, err := services.NewResendClient()
	if err != nil {
		log.Printf("[contact] email service unavailable: %v", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Contact form temporarily unavailable"))
		return
	}

	go func() {
		if err := resendClient.SendContactEmail(req); err != nil {
			log.Printf("[contact] failed to forward message from %s: %v", req.Name, err)
		} else {
			log.Printf("[contact] message from %s forwarded to the bakery inbox", req.Name)
		}
	}()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Thanks! We'll get back to you soon.", gin.H{
		"name": req.Name,
	}))
}
