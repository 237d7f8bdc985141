package models

import "time"

// Review rates a meal from a delivered order. The explicit OrderID (plus the
// composite unique index) pins each review to the order it came from, so a
// customer reordering the same meal can review each delivery once.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_review_once"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	MealID    uint      `json:"meal_id" gorm:"not null;uniqueIndex:idx_review_once"`
	OrderID   uint      `json:"order_id" gorm:"not null;uniqueIndex:idx_review_once"`
	CreatedAt time.Time `json:"created_at"`
}
