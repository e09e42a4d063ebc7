package configurator_controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/config"
	"github.com/wizreet/cocobakes/models"
	"github.com/wizreet/cocobakes/services"
	"gorm.io/datatypes"
)

var (
	sessions   services.SessionStore
	catalog    *models.Catalog
	dispatcher *services.DispatchService
	msgOpts    services.MessageOptions
)

// Init wires the configurator handlers. Everything the core needs — catalog,
// session store, dispatch config, message wording — is constructed in main
// (or in tests) and passed in here; the handlers keep no other global state.
func Init(store services.SessionStore, cat *models.Catalog, d *services.DispatchService, opts services.MessageOptions) {
	sessions = store
	catalog = cat
	dispatcher = d
	msgOpts = opts
}

// loadSession resolves the :id path param to its selection state. A false
// return means the error response has already been written.
func loadSession(c *gin.Context) (string, *models.SelectionState, bool) {
	id := c.Param("id")
	sel, err := sessions.Get(c.Request.Context(), id)
	if err == services.ErrSessionNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Session not found or expired"))
		return id, nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load session"))
		return id, nil, false
	}
	return id, sel, true
}

// saveSession persists the mutated state. A false return means the error
// response has already been written.
func saveSession(c *gin.Context, id string, sel *models.SelectionState) bool {
	if err := sessions.Save(c.Request.Context(), id, sel); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save session"))
		return false
	}
	return true
}

// sessionPayload is the response body every mutation answers with: the
// selection plus the breakdown recomputed from it, so the storefront never
// has to price anything itself.
func sessionPayload(id string, sel *models.SelectionState) gin.H {
	return gin.H{
		"session_id": id,
		"selection":  sel,
		"pricing":    services.ComputeBreakdown(sel, catalog),
	}
}

// orderMessage formats the current order; "" means no base selected and the
// caller must not dispatch.
func orderMessage(sel *models.SelectionState) (string, models.PriceBreakdown) {
	breakdown := services.ComputeBreakdown(sel, catalog)
	return services.GenerateOrderMessage(sel, catalog, breakdown, msgOpts), breakdown
}

// recordDispatch writes the audit row for an outbound order message.
// Best-effort: a failed write is logged, never surfaced to the customer.
func recordDispatch(c *gin.Context, id string, sel *models.SelectionState, breakdown models.PriceBreakdown, channel string) {
	if config.Gorm == nil {
		return
	}

	snapshot, _ := json.Marshal(sel)
	entry := models.DispatchLog{
		SessionID:  id,
		Channel:    channel,
		Selection:  datatypes.JSON(snapshot),
		FinalPrice: breakdown.FinalPrice,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	if err := config.Gorm.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("[configurator.dispatch] failed to log %s dispatch for session %s: %v", channel, id, err)
	}
}
