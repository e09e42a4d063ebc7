package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/controllers/contact_controller"
)

// SetupContactRoutes registers the contact-form endpoint.
func SetupContactRoutes(router *gin.RouterGroup) {
	router.POST("/contact", contact_controller.SubmitContact)
}
