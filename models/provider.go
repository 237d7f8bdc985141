package models

import "time"

// ProviderProfile is the restaurant-facing identity of a PROVIDER user.
// Rating and ReviewCount are denormalized from reviews of the provider's meals.
type ProviderProfile struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User         User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name         string    `json:"name" gorm:"not null"`
	Slug         string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	CoverImage   string    `json:"cover_image"`
	Rating       float64   `json:"rating" gorm:"default:0"`
	ReviewCount  int       `json:"review_count" gorm:"default:0"`
	DeliveryTime string    `json:"delivery_time"`
	DeliveryFee  float64   `json:"delivery_fee" gorm:"default:0"`
	MinOrder     float64   `json:"min_order" gorm:"default:0"`
	Cuisines     []string  `json:"cuisines" gorm:"serializer:json"`
	IsOpen       bool      `json:"is_open" gorm:"default:true"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Meals        []Meal    `json:"meals,omitempty" gorm:"foreignKey:ProviderID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
