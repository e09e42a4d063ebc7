package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/controllers/configurator_controller"
)

// SetupConfiguratorRoutes registers the brownie-builder session endpoints.
func SetupConfiguratorRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/configurator/sessions")
	{
		sessions.POST("", configurator_controller.CreateSession)
		sessions.GET("/:id", configurator_controller.GetSession)
		sessions.DELETE("/:id", configurator_controller.DeleteSession)

		sessions.PUT("/:id/base", configurator_controller.SelectBase)
		sessions.POST("/:id/options", configurator_controller.ToggleOption)
		sessions.PUT("/:id/quantity", configurator_controller.SetQuantity)
		sessions.POST("/:id/reset", configurator_controller.ResetSession)

		sessions.GET("/:id/message", configurator_controller.PreviewMessage)
		sessions.GET("/:id/dispatch/whatsapp", configurator_controller.DispatchWhatsApp)
		sessions.GET("/:id/dispatch/clipboard", configurator_controller.DispatchClipboard)
		sessions.GET("/:id/order-slip", configurator_controller.DownloadOrderSlip)
		sessions.POST("/:id/email", configurator_controller.EmailOrderCopy)
	}
}
