package services

import (
	"time"

	"meal-marketplace-api/apperr"
	"meal-marketplace-api/models"
	"meal-marketplace-api/repository"

	"golang.org/x/sync/errgroup"
)

type AdminService struct {
	users     *repository.UserRepository
	providers *repository.ProviderRepository
	orders    *repository.OrderRepository
}

func NewAdminService(
	users *repository.UserRepository,
	providers *repository.ProviderRepository,
	orders *repository.OrderRepository,
) *AdminService {
	return &AdminService{users: users, providers: providers, orders: orders}
}

// PlatformDashboard aggregates platform-wide totals, same snapshot
// semantics as the provider dashboard.
type PlatformDashboard struct {
	TotalUsers     int64                        `json:"total_users"`
	TotalProviders int64                        `json:"total_providers"`
	TotalOrders    int64                        `json:"total_orders"`
	StatusCounts   map[models.OrderStatus]int64 `json:"status_counts"`
	TotalRevenue   float64                      `json:"total_revenue"`
	MonthlyRevenue float64                      `json:"monthly_revenue"`
}

func (s *AdminService) GetDashboard() (*PlatformDashboard, error) {
	dash := &PlatformDashboard{StatusCounts: make(map[models.OrderStatus]int64, len(models.OrderStatuses))}
	counts := make([]int64, len(models.OrderStatuses))

	var g errgroup.Group
	g.Go(func() error {
		n, err := s.users.Count()
		dash.TotalUsers = n
		return err
	})
	g.Go(func() error {
		n, err := s.providers.Count()
		dash.TotalProviders = n
		return err
	})
	g.Go(func() error {
		n, err := s.orders.Count()
		dash.TotalOrders = n
		return err
	})
	for i, status := range models.OrderStatuses {
		i, status := i, status
		g.Go(func() error {
			n, err := s.orders.CountByStatus(0, status)
			counts[i] = n
			return err
		})
	}
	g.Go(func() error {
		revenue, err := s.orders.DeliveredRevenue(0, time.Time{})
		dash.TotalRevenue = revenue
		return err
	})
	g.Go(func() error {
		revenue, err := s.orders.DeliveredRevenue(0, startOfMonth(time.Now()))
		dash.MonthlyRevenue = revenue
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, status := range models.OrderStatuses {
		dash.StatusCounts[status] = counts[i]
	}
	return dash, nil
}

func (s *AdminService) Users(role string) ([]models.User, error) {
	return s.users.FindAll(role)
}

// SetUserStatus suspends or reactivates an account.
func (s *AdminService) SetUserStatus(id uint, status models.UserStatus) error {
	if status != models.UserActive && status != models.UserSuspended {
		return apperr.Validation("status must be ACTIVE or SUSPENDED")
	}
	return s.users.UpdateStatus(id, status)
}

func (s *AdminService) Orders(filter repository.OrderFilter) ([]models.Order, error) {
	return s.orders.FindAll(filter)
}

func (s *AdminService) Providers() ([]models.ProviderProfile, error) {
	return s.providers.FindAll(repository.ProviderFilter{})
}
