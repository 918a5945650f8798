// internal/models/supermarket.go
package models

type Supermarket struct {
	BaseModel
	Name    string `json:"name" gorm:"size:100;not null;uniqueIndex"`
	LogoURL string `json:"logo_url" gorm:"size:500"`
	Color   string `json:"color" gorm:"size:50"`
}
