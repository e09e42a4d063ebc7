package configurator_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/models"
)

type setQuantityRequest struct {
	// Quantity accepts a number or a numeric string; whatever arrives is
	// normalized, never rejected.
	Quantity any `json:"quantity"`
}

// parseQuantity reads the raw JSON value. Unparseable input falls back to
// the catalog minimum; out-of-range values are clamped by SetQuantity.
func parseQuantity(raw any, opts models.QuantityOptions) int {
	switch v := raw.(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return opts.Min
}

// SetQuantity godoc
// @Summary Set the order quantity
// @Description Store the quantity clamped into the catalog bounds. Non-numeric input resolves to the minimum; this endpoint never errors on bad values.
// @Tags Configurator
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body setQuantityRequest true "Quantity"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Session not found"
// @Router /configurator/sessions/{id}/quantity [put]
func SetQuantity(c *gin.Context) {
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// malformed body is treated like unparseable input, not an error
		req.Quantity = nil
	}

	id, sel, ok := loadSession(c)
	if !ok {
		return
	}

	sel.SetQuantity(parseQuantity(req.Quantity, catalog.Quantity), catalog.Quantity)
	if !saveSession(c, id, sel) {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quantity updated", sessionPayload(id, sel)))
}
