// internal/models/price.go
package models

// Price is one supermarket's quote for one product. Entries belong to their
// product; the supermarket reference is shared.
type Price struct {
	BaseModel
	ProductID     string   `json:"-" gorm:"type:uuid;not null;index"`
	SupermarketID string   `json:"-" gorm:"type:uuid;not null;index"`
	Price         float64  `json:"price" gorm:"type:decimal(10,2);not null"`
	OriginalPrice *float64 `json:"original_price" gorm:"type:decimal(10,2)"`
	Discount      *int     `json:"discount"`
	Availability  bool     `json:"availability" gorm:"default:true"`
	Address       string   `json:"address" gorm:"size:255"`

	// Relationships
	Supermarket Supermarket `json:"supermarket" gorm:"foreignKey:SupermarketID"`
}
