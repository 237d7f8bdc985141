package models

import "time"

// OrderStatus represents all possible states of a marketplace order
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "PLACED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses lists every legal status value, in lifecycle order.
var OrderStatuses = []OrderStatus{
	StatusPlaced, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled,
}

type Order struct {
	ID              uint                 `json:"id" gorm:"primaryKey"`
	Number          string               `json:"number" gorm:"uniqueIndex;not null"`
	CustomerID      uint                 `json:"customer_id" gorm:"not null;index"`
	Customer        User                 `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ProviderID      uint                 `json:"provider_id" gorm:"not null;index"`
	Provider        ProviderProfile      `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Status          OrderStatus          `json:"status" gorm:"not null;default:'PLACED'"`
	TotalPrice      float64              `json:"total_price"`
	DeliveryAddress string               `json:"delivery_address" gorm:"not null"`
	Note            string               `json:"note"`
	Items           []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	StatusHistory   []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

type OrderItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"order_id" gorm:"not null;index"`
	MealID   uint    `json:"meal_id" gorm:"not null;index"`
	Meal     Meal    `json:"meal,omitempty" gorm:"foreignKey:MealID"`
	Quantity int     `json:"quantity" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"` // snapshot price at time of order
	Name     string  `json:"name"`                  // snapshot name
}

// OrderStatusHistory tracks every status change for the audit trail
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null;index"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"` // user ID who triggered the transition
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
