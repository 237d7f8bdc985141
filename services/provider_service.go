package services

import (
	"time"

	"meal-marketplace-api/models"
	"meal-marketplace-api/repository"

	"golang.org/x/sync/errgroup"
)

type ProviderService struct {
	providers *repository.ProviderRepository
	orders    *repository.OrderRepository
	meals     *repository.MealRepository
}

func NewProviderService(
	providers *repository.ProviderRepository,
	orders *repository.OrderRepository,
	meals *repository.MealRepository,
) *ProviderService {
	return &ProviderService{providers: providers, orders: orders, meals: meals}
}

func (s *ProviderService) MyProfile(userID uint) (*models.ProviderProfile, error) {
	return s.providers.FindByUserID(userID)
}

// providerUpdatable is the field allow-list for profile edits.
var providerUpdatable = map[string]bool{
	"name": true, "description": true, "image": true, "cover_image": true,
	"delivery_time": true, "delivery_fee": true, "min_order": true,
	"is_open": true, "address": true, "phone": true,
}

func (s *ProviderService) UpdateProfile(userID uint, fields map[string]interface{}) (*models.ProviderProfile, error) {
	profile, err := s.providers.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	update := map[string]interface{}{}
	for k, v := range fields {
		if providerUpdatable[k] {
			update[k] = v
		}
	}
	if err := s.providers.Update(profile, update); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProviderService) Orders(userID uint, status string) ([]models.Order, error) {
	profile, err := s.providers.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.orders.FindByProvider(profile.ID, status)
}

// Dashboard is a point-in-time snapshot for the provider's home screen.
// The aggregates are read concurrently and independently, so a status
// change racing the queries can make the counts disagree with the sums.
type Dashboard struct {
	StatusCounts   map[models.OrderStatus]int64 `json:"status_counts"`
	TotalRevenue   float64                      `json:"total_revenue"`
	MonthlyRevenue float64                      `json:"monthly_revenue"`
	MealCount      int64                        `json:"meal_count"`
}

func (s *ProviderService) GetDashboard(userID uint) (*Dashboard, error) {
	profile, err := s.providers.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	dash := &Dashboard{StatusCounts: make(map[models.OrderStatus]int64, len(models.OrderStatuses))}
	counts := make([]int64, len(models.OrderStatuses))

	var g errgroup.Group
	for i, status := range models.OrderStatuses {
		i, status := i, status
		g.Go(func() error {
			n, err := s.orders.CountByStatus(profile.ID, status)
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	g.Go(func() error {
		revenue, err := s.orders.DeliveredRevenue(profile.ID, time.Time{})
		if err != nil {
			return err
		}
		dash.TotalRevenue = revenue
		return nil
	})
	g.Go(func() error {
		revenue, err := s.orders.DeliveredRevenue(profile.ID, startOfMonth(time.Now()))
		if err != nil {
			return err
		}
		dash.MonthlyRevenue = revenue
		return nil
	})
	g.Go(func() error {
		n, err := s.meals.CountByProvider(profile.ID)
		if err != nil {
			return err
		}
		dash.MealCount = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, status := range models.OrderStatuses {
		dash.StatusCounts[status] = counts[i]
	}
	return dash, nil
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
