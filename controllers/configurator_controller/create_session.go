package configurator_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/models"
)

// CreateSession godoc
// @Summary Start a configurator session
// @Description Create a fresh brownie-builder session with the initial selection state
// @Tags Configurator
// @Produce json
// @Success 201 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /configurator/sessions [post]
func CreateSession(c *gin.Context) {
	sel := models.NewSelectionState(catalog.Quantity)

	id, err := sessions.Create(c.Request.Context(), sel)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Session created", sessionPayload(id, sel)))
}
