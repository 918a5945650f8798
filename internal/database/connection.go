// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/panierprix/panier-backend/internal/config"
	"github.com/panierprix/panier-backend/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Needed for gen_random_uuid defaults
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"pgcrypto\"").Error; err != nil {
		return fmt.Errorf("failed to create pgcrypto extension: %w", err)
	}

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.Supermarket{},
		&models.Product{},
		&models.Price{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Search matches on lowered name/brand/category
		"CREATE INDEX IF NOT EXISTS idx_products_lower_name ON products(LOWER(name))",
		"CREATE INDEX IF NOT EXISTS idx_products_lower_brand ON products(LOWER(brand))",
		"CREATE INDEX IF NOT EXISTS idx_products_lower_category ON products(LOWER(category))",

		// Price joins
		"CREATE INDEX IF NOT EXISTS idx_prices_product ON prices(product_id)",
		"CREATE INDEX IF NOT EXISTS idx_prices_supermarket ON prices(supermarket_id)",
		"CREATE INDEX IF NOT EXISTS idx_prices_availability ON prices(product_id, availability)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

type seedPrice struct {
	supermarket   string
	price         float64
	originalPrice *float64
	discount      *int
	availability  bool
}

type seedProduct struct {
	name        string
	brand       string
	description string
	category    string
	rating      float64
	reviewCount int64
	prices      []seedPrice
}

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	var supermarketCount int64
	db.Model(&models.Supermarket{}).Count(&supermarketCount)
	if supermarketCount > 0 {
		log.Println("Database already seeded, skipping")
		return nil
	}

	supermarkets := []models.Supermarket{
		{Name: "Carrefour", Color: "bg-blue-500"},
		{Name: "Leclerc", Color: "bg-green-500"},
		{Name: "Auchan", Color: "bg-red-500"},
		{Name: "Casino", Color: "bg-yellow-500"},
		{Name: "Monoprix", Color: "bg-purple-500"},
	}

	smIDs := make(map[string]string, len(supermarkets))
	for i := range supermarkets {
		supermarkets[i].ID = uuid.NewString()
		smIDs[supermarkets[i].Name] = supermarkets[i].ID
	}

	if err := db.Create(&supermarkets).Error; err != nil {
		return fmt.Errorf("failed to seed supermarkets: %w", err)
	}

	pf := func(v float64) *float64 { return &v }
	pi := func(v int) *int { return &v }

	seeds := []seedProduct{
		{
			name: "Nutella 400g", brand: "Ferrero",
			description: "Pâte à tartiner aux noisettes et au cacao.",
			category:    "Petit-déjeuner", rating: 4.5, reviewCount: 1247,
			prices: []seedPrice{
				{supermarket: "Carrefour", price: 3.75, availability: true},
				{supermarket: "Leclerc", price: 3.95, availability: false},
				{supermarket: "Auchan", price: 4.15, availability: true},
				{supermarket: "Casino", price: 4.05, originalPrice: pf(4.49), discount: pi(10), availability: true},
				{supermarket: "Monoprix", price: 4.35, availability: true},
			},
		},
		{
			name: "Lait Demi-Écrémé 1L", brand: "Lactel",
			description: "Lait demi-écrémé stérilisé UHT.",
			category:    "Produits laitiers", rating: 4.2, reviewCount: 583,
			prices: []seedPrice{
				{supermarket: "Carrefour", price: 1.22, availability: true},
				{supermarket: "Leclerc", price: 1.19, availability: true},
				{supermarket: "Auchan", price: 1.25, availability: true},
				{supermarket: "Casino", price: 1.31, availability: true},
				{supermarket: "Monoprix", price: 1.35, availability: false},
			},
		},
		{
			name: "Pain de Mie Complet", brand: "Harrys",
			description: "Pain de mie à la farine complète, sans additifs.",
			category:    "Boulangerie", rating: 4.0, reviewCount: 312,
			prices: []seedPrice{
				{supermarket: "Carrefour", price: 1.89, availability: true},
				{supermarket: "Leclerc", price: 1.85, originalPrice: pf(2.05), discount: pi(10), availability: true},
				{supermarket: "Auchan", price: 1.98, availability: true},
				{supermarket: "Monoprix", price: 2.10, availability: true},
			},
		},
		{
			name: "Huile d'Olive Vierge Extra 75cl", brand: "Puget",
			description: "Huile d'olive vierge extra, extraction à froid.",
			category:    "Huiles & Vinaigres", rating: 4.3, reviewCount: 428,
			prices: []seedPrice{
				{supermarket: "Carrefour", price: 5.15, availability: true},
				{supermarket: "Leclerc", price: 4.89, availability: true},
				{supermarket: "Auchan", price: 5.45, availability: true},
				{supermarket: "Casino", price: 5.29, availability: false},
			},
		},
		{
			name: "Pâtes Spaghetti 500g", brand: "Panzani",
			description: "Spaghetti de qualité supérieure, cuisson 9 minutes.",
			category:    "Épicerie", rating: 4.1, reviewCount: 756,
			prices: []seedPrice{
				{supermarket: "Carrefour", price: 1.05, availability: true},
				{supermarket: "Leclerc", price: 0.95, availability: true},
				{supermarket: "Auchan", price: 1.15, originalPrice: pf(1.29), discount: pi(11), availability: true},
				{supermarket: "Casino", price: 1.12, availability: true},
				{supermarket: "Monoprix", price: 1.19, availability: true},
			},
		},
		{
			name: "Yaourt Nature 8x125g", brand: "Danone",
			description: "Yaourts nature au lait entier.",
			category:    "Produits laitiers", rating: 4.4, reviewCount: 934,
			prices: []seedPrice{
				{supermarket: "Carrefour", price: 2.55, availability: true},
				{supermarket: "Leclerc", price: 2.45, availability: true},
				{supermarket: "Auchan", price: 2.78, availability: true},
				{supermarket: "Monoprix", price: 2.89, availability: false},
			},
		},
	}

	for _, seed := range seeds {
		product := models.Product{
			BaseModel:   models.BaseModel{ID: uuid.NewString()},
			Name:        seed.name,
			Brand:       seed.brand,
			Description: seed.description,
			Category:    seed.category,
			Rating:      seed.rating,
			ReviewCount: seed.reviewCount,
		}
		if err := db.Create(&product).Error; err != nil {
			return fmt.Errorf("failed to seed product %q: %w", seed.name, err)
		}

		for i, sp := range seed.prices {
			price := models.Price{
				BaseModel:     models.BaseModel{ID: uuid.NewString()},
				ProductID:     product.ID,
				SupermarketID: smIDs[sp.supermarket],
				Price:         sp.price,
				OriginalPrice: sp.originalPrice,
				Discount:      sp.discount,
				Availability:  sp.availability,
				Address:       fmt.Sprintf("Magasin %s - %d rue de la République", sp.supermarket, i+1),
			}
			if err := db.Create(&price).Error; err != nil {
				return fmt.Errorf("failed to seed price for %q: %w", seed.name, err)
			}
		}
	}

	log.Println("Initial data seeding completed")
	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
