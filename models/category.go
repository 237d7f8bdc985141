package models

import "time"

// Category groups meals for browsing. MealCount is denormalized and
// maintained when meals are created or hard-deleted.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null"`
	Icon      string    `json:"icon"`
	Image     string    `json:"image"`
	MealCount int       `json:"meal_count" gorm:"default:0"`
	Meals     []Meal    `json:"meals,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
