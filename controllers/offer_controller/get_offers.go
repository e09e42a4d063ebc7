package offer_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	offer_cache "github.com/wizreet/cocobakes/cache"
	"github.com/wizreet/cocobakes/config"
	"github.com/wizreet/cocobakes/models"
)

// GetOffers godoc
// @Summary Get active promotional offers
// @Description Get the offers currently running, for the storefront banner
// @Tags Offers
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/offers [get]
func GetOffers(c *gin.Context) {
	if offers, ok := offer_cache.Get(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Offers fetched", offers))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT id, title, description, discount_percent, starts_at, ends_at
		FROM offers
		WHERE active = true
		  AND starts_at <= now()
		  AND ends_at >= now()
		ORDER BY starts_at ASC
	`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		log.Printf("[offers] failed to query offers: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch offers"))
		return
	}
	defer rows.Close()

	offers := make([]models.Offer, 0)
	for rows.Next() {
		var o models.Offer
		if err := rows.Scan(&o.ID, &o.Title, &o.Description, &o.DiscountPercent, &o.StartsAt, &o.EndsAt); err != nil {
			log.Printf("[offers] failed to scan offer row: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch offers"))
			return
		}
		o.Active = true
		offers = append(offers, o)
	}
	if rows.Err() != nil {
		log.Printf("[offers] offer rows error: %v", rows.Err())
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch offers"))
		return
	}

	offer_cache.Set(offers)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Offers fetched", offers))
}
