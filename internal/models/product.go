// internal/models/product.go
package models

type Product struct {
	BaseModel
	Name        string  `json:"name" gorm:"size:255;not null"`
	Brand       string  `json:"brand" gorm:"size:100;index"`
	Description string  `json:"description" gorm:"type:text"`
	Category    string  `json:"category" gorm:"size:100;index"`
	Rating      float64 `json:"rating" gorm:"type:decimal(3,2);default:0"`
	ReviewCount int64   `json:"review_count" gorm:"default:0"`
	ImageURL    string  `json:"image_url" gorm:"size:500"`

	// Relationships
	Prices []Price `json:"prices" gorm:"foreignKey:ProductID"`
}
