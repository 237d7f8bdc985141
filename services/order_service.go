package services

import (
	"strings"

	"meal-marketplace-api/apperr"
	"meal-marketplace-api/models"
	"meal-marketplace-api/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type OrderService struct {
	db        *gorm.DB
	orders    *repository.OrderRepository
	meals     *repository.MealRepository
	providers *repository.ProviderRepository
	log       zerolog.Logger
}

func NewOrderService(
	db *gorm.DB,
	orders *repository.OrderRepository,
	meals *repository.MealRepository,
	providers *repository.ProviderRepository,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{db: db, orders: orders, meals: meals, providers: providers, log: log}
}

type OrderItemInput struct {
	MealID   uint
	Quantity int
}

type PlaceOrderInput struct {
	ProviderID      uint
	DeliveryAddress string
	Note            string
	Items           []OrderItemInput
}

// Place validates the cart against the provider's live menu, snapshots
// prices and writes order + items + initial history in one transaction.
func (s *OrderService) Place(customerID uint, in PlaceOrderInput) (*models.Order, error) {
	provider, err := s.providers.FindByID(in.ProviderID)
	if err != nil {
		return nil, err
	}
	if !provider.IsOpen {
		return nil, apperr.Conflict("provider is currently closed")
	}

	var items []models.OrderItem
	var total float64
	for _, it := range in.Items {
		meal, err := s.meals.FindByID(it.MealID)
		if err != nil {
			return nil, err
		}
		if meal.ProviderID != in.ProviderID {
			return nil, apperr.Validation("meal '" + meal.Name + "' does not belong to this provider")
		}
		if !meal.Available {
			return nil, apperr.Validation("meal '" + meal.Name + "' is not available")
		}
		total += meal.Price * float64(it.Quantity)
		items = append(items, models.OrderItem{
			MealID:   meal.ID,
			Quantity: it.Quantity,
			Price:    meal.Price,
			Name:     meal.Name,
		})
	}

	if total < provider.MinOrder {
		return nil, apperr.Validation("order total is below the provider's minimum order amount")
	}

	order := models.Order{
		Number:          newOrderNumber(),
		CustomerID:      customerID,
		ProviderID:      in.ProviderID,
		Status:          models.StatusPlaced,
		TotalPrice:      total,
		DeliveryAddress: in.DeliveryAddress,
		Note:            in.Note,
		Items:           items,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orders.Create(tx, &order); err != nil {
			return err
		}
		return s.orders.CreateHistory(tx, &models.OrderStatusHistory{
			OrderID:   order.ID,
			ToStatus:  models.StatusPlaced,
			ChangedBy: customerID,
			Note:      "order placed by customer",
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("order_id", order.ID).Str("number", order.Number).
		Float64("total", total).Msg("order placed")
	return &order, nil
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

func (s *OrderService) ListMine(customerID uint) ([]models.Order, error) {
	return s.orders.FindByCustomer(customerID)
}

func (s *OrderService) Get(customerID, orderID uint) (*models.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, apperr.Forbidden("this order does not belong to you")
	}
	return order, nil
}
