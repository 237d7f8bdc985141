package models

import "time"

type Meal struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	ProviderID    uint            `json:"provider_id" gorm:"not null;index"`
	Provider      ProviderProfile `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	CategoryID    uint            `json:"category_id" gorm:"not null;index"`
	Category      Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name          string          `json:"name" gorm:"not null"`
	Slug          string          `json:"slug" gorm:"index;not null"`
	Description   string          `json:"description"`
	Price         float64         `json:"price" gorm:"not null"`
	OriginalPrice float64         `json:"original_price"`
	Image         string          `json:"image"`
	Available     bool            `json:"available" gorm:"default:true"`
	Calories      int             `json:"calories"`
	PrepTime      int             `json:"prep_time_minutes"`
	IsVegetarian  bool            `json:"is_vegetarian" gorm:"default:false"`
	IsSpicy       bool            `json:"is_spicy" gorm:"default:false"`
	IsPopular     bool            `json:"is_popular" gorm:"default:false"`
	Ingredients   []string        `json:"ingredients" gorm:"serializer:json"`
	Reviews       []Review        `json:"reviews,omitempty" gorm:"foreignKey:MealID"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
