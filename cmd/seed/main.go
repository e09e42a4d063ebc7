package main

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"

	"github.com/wizreet/cocobakes/config"
	"github.com/wizreet/cocobakes/models"
	"github.com/wizreet/cocobakes/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the catalog tables and loads the embedded menu fixture plus
// a starter set of offers.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("COCOBAKES - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.Gorm.AutoMigrate(
		&models.CatalogCategoryRow{},
		&models.CatalogItemRow{},
		&models.QuantityRuleRow{},
		&models.Offer{},
		&models.DispatchLog{},
	); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
	log.Println("✓ Tables migrated")

	catalog := services.DefaultCatalog()
	if err := services.ValidateCatalog(catalog); err != nil {
		log.Fatalf("Embedded catalog invalid: %v", err)
	}

	seedCategory(&catalog.Base, "base")
	seedCategory(&catalog.Toppings, "toppings")
	seedCategory(&catalog.Extras, "extras")
	seedQuantityRule(catalog.Quantity)
	seedOffers()

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Catalog Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Check the menu at GET /api/v1/store/catalog")
	fmt.Println("3. Start a builder session at POST /api/v1/configurator/sessions")
	fmt.Println()
}

// seedCategory replaces a category and its items with the fixture contents.
func seedCategory(cat *models.CatalogCategory, key string) {
	var existing models.CatalogCategoryRow
	err := config.Gorm.Where("key = ?", key).First(&existing).Error
	if err == nil {
		// wipe and reseed so reruns converge on the fixture
		if err := config.Gorm.Where("category_id = ?", existing.ID).Delete(&models.CatalogItemRow{}).Error; err != nil {
			log.Fatalf("Failed to clear items for %s: %v", key, err)
		}
		if err := config.Gorm.Delete(&existing).Error; err != nil {
			log.Fatalf("Failed to clear category %s: %v", key, err)
		}
	}

	row := models.CatalogCategoryRow{
		Key:           key,
		Name:          cat.Name,
		Description:   cat.Description,
		Required:      cat.Required,
		MaxSelections: cat.MaxSelections,
	}
	if err := config.Gorm.Create(&row).Error; err != nil {
		log.Fatalf("Failed to create category %s: %v", key, err)
	}

	for i, item := range cat.Options {
		itemRow := models.CatalogItemRow{
			CategoryID:  row.ID,
			Key:         item.ID,
			Name:        item.Name,
			Price:       item.Price,
			Description: item.Description,
			Position:    i,
		}
		if err := config.Gorm.Create(&itemRow).Error; err != nil {
			log.Fatalf("Failed to create item %s: %v", item.ID, err)
		}
	}

	log.Printf("✓ Category %q seeded with %d items", key, len(cat.Options))
}

func seedQuantityRule(q models.QuantityOptions) {
	if err := config.Gorm.Where("1 = 1").Delete(&models.QuantityRuleRow{}).Error; err != nil {
		log.Fatalf("Failed to clear quantity rules: %v", err)
	}

	presets, err := json.Marshal(q.Presets)
	if err != nil {
		log.Fatalf("Failed to marshal presets: %v", err)
	}

	rule := models.QuantityRuleRow{
		MinQuantity:     q.Min,
		MaxQuantity:     q.Max,
		DefaultQuantity: q.Default,
		Presets:         datatypes.JSON(presets),
	}
	if err := config.Gorm.Create(&rule).Error; err != nil {
		log.Fatalf("Failed to create quantity rule: %v", err)
	}

	log.Printf("✓ Quantity rule seeded: [%d, %d] default %d, %d presets", q.Min, q.Max, q.Default, len(q.Presets))
}

func seedOffers() {
	var count int64
	config.Gorm.Model(&models.Offer{}).Count(&count)
	if count > 0 {
		log.Printf("✓ Offers already present (%d), skipping", count)
		return
	}

	now := time.Now()
	offers := []models.Offer{
		{
			Title:           "Dozen Box — 10% off",
			Description:     "Order a dozen brownies and save 10% on the whole box",
			DiscountPercent: 10,
			StartsAt:        now,
			EndsAt:          now.AddDate(0, 3, 0),
			Active:          true,
		},
		{
			Title:           "Party Pack — 15% off",
			Description:     "24 pieces for your celebration, 15% off",
			DiscountPercent: 15,
			StartsAt:        now,
			EndsAt:          now.AddDate(0, 3, 0),
			Active:          true,
		},
	}
	for i := range offers {
		if err := config.Gorm.Create(&offers[i]).Error; err != nil {
			log.Fatalf("Failed to create offer: %v", err)
		}
	}

	log.Printf("✓ %d offers seeded", len(offers))
}
