package repository

import (
	"errors"
	"time"

	"meal-marketplace-api/apperr"
	"meal-marketplace-api/models"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts the order together with its items (nested write).
func (r *OrderRepository) Create(tx *gorm.DB, order *models.Order) error {
	if err := tx.Create(order).Error; err != nil {
		return apperr.Infra("create order", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items.Meal").Preload("Provider").Preload("StatusHistory").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, apperr.Infra("find order", err)
	}
	return &order, nil
}

func (r *OrderRepository) FindByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items.Meal").Preload("Provider").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, apperr.Infra("list customer orders", err)
	}
	return orders, nil
}

func (r *OrderRepository) FindByProvider(providerID uint, status string) ([]models.Order, error) {
	var orders []models.Order
	query := r.db.Preload("Items.Meal").Preload("Customer").
		Where("provider_id = ?", providerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, apperr.Infra("list provider orders", err)
	}
	return orders, nil
}

// OrderFilter narrows the admin order listing.
type OrderFilter struct {
	Status     string
	CustomerID string
	ProviderID string
}

func (r *OrderRepository) FindAll(filter OrderFilter) ([]models.Order, error) {
	var orders []models.Order
	query := r.db.Preload("Items.Meal").Preload("Customer").Preload("Provider")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != "" {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.ProviderID != "" {
		query = query.Where("provider_id = ?", filter.ProviderID)
	}
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, apperr.Infra("list orders", err)
	}
	return orders, nil
}

// UpdateStatusGuard performs the optimistic transition write: the row is
// only touched while it still holds the expected current status, so a
// concurrent transition loses cleanly instead of overwriting.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from, to models.OrderStatus) (int64, error) {
	res := tx.Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return 0, apperr.Infra("update order status", res.Error)
	}
	return res.RowsAffected, nil
}

// ForceStatus overwrites the status unconditionally (admin override path).
func (r *OrderRepository) ForceStatus(tx *gorm.DB, id uint, to models.OrderStatus) error {
	res := tx.Model(&models.Order{}).Where("id = ?", id).Update("status", to)
	if res.Error != nil {
		return apperr.Infra("force order status", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("order not found")
	}
	return nil
}

func (r *OrderRepository) CreateHistory(tx *gorm.DB, history *models.OrderStatusHistory) error {
	if err := tx.Create(history).Error; err != nil {
		return apperr.Infra("record status history", err)
	}
	return nil
}

// CountByStatus counts orders in one status; providerID 0 means platform-wide.
func (r *OrderRepository) CountByStatus(providerID uint, status models.OrderStatus) (int64, error) {
	var count int64
	query := r.db.Model(&models.Order{}).Where("status = ?", status)
	if providerID != 0 {
		query = query.Where("provider_id = ?", providerID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, apperr.Infra("count orders by status", err)
	}
	return count, nil
}

// DeliveredRevenue sums total_price over delivered orders; providerID 0
// means platform-wide, and a zero since means all time.
func (r *OrderRepository) DeliveredRevenue(providerID uint, since time.Time) (float64, error) {
	var revenue float64
	query := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("status = ?", models.StatusDelivered)
	if providerID != 0 {
		query = query.Where("provider_id = ?", providerID)
	}
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}
	if err := query.Scan(&revenue).Error; err != nil {
		return 0, apperr.Infra("sum delivered revenue", err)
	}
	return revenue, nil
}

func (r *OrderRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, apperr.Infra("count orders", err)
	}
	return count, nil
}
