package offer_cache

import (
	"sync"
	"time"

	"github.com/wizreet/cocobakes/models"
)

const TTL = 5 * time.Minute

// ── Active offers cache ──────────────────────────────────────────────────────
// The banner is read on every storefront page load but offers change rarely,
// so GetOffers serves from here and only hits Postgres on a miss.

type offersEntry struct {
	offers    []models.Offer
	fetchedAt time.Time
}

var (
	offersMu    sync.RWMutex
	offersCache *offersEntry
)

func Get() ([]models.Offer, bool) {
	offersMu.RLock()
	defer offersMu.RUnlock()
	if offersCache != nil && time.Since(offersCache.fetchedAt) < TTL {
		return offersCache.offers, true
	}
	return nil, false
}

func Set(offers []models.Offer) {
	offersMu.Lock()
	defer offersMu.Unlock()
	offersCache = &offersEntry{offers: offers, fetchedAt: time.Now()}
}

// Invalidate drops the cached banner (call after reseeding offers).
func Invalidate() {
	offersMu.Lock()
	offersCache = nil
	offersMu.Unlock()
}
