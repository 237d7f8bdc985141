package services

import (
	"meal-marketplace-api/apperr"
	"meal-marketplace-api/models"
	"meal-marketplace-api/statemachine"

	"gorm.io/gorm"
)

// Cancel lets the customer cancel their own order while the transition
// table still allows it.
func (s *OrderService) Cancel(customerID, orderID uint) (*models.Order, error) {
	order, err := s.Get(customerID, orderID)
	if err != nil {
		return nil, err
	}
	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, "customer"); err != nil {
		return nil, err
	}
	if err := s.applyTransition(order, models.StatusCancelled, customerID, "order cancelled by customer"); err != nil {
		return nil, err
	}
	return order, nil
}

// ProviderTransition moves an order through the lifecycle on behalf of
// the fulfilling provider.
func (s *OrderService) ProviderTransition(ownerUserID, orderID uint, to models.OrderStatus, note string) (*models.Order, error) {
	profile, err := s.providers.FindByUserID(ownerUserID)
	if err != nil {
		return nil, err
	}
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.ProviderID != profile.ID {
		return nil, apperr.Forbidden("this order does not belong to your restaurant")
	}
	if err := statemachine.CanTransition(order.Status, to, "provider"); err != nil {
		return nil, err
	}
	if note == "" {
		note = "status updated by provider"
	}
	if err := s.applyTransition(order, to, ownerUserID, note); err != nil {
		return nil, err
	}
	return order, nil
}

// applyTransition runs the optimistic guarded write plus the history row.
// A guard miss means the order moved concurrently; the caller gets a
// Conflict and can re-read.
func (s *OrderService) applyTransition(order *models.Order, to models.OrderStatus, actorID uint, note string) error {
	from := order.Status
	err := s.db.Transaction(func(tx *gorm.DB) error {
		affected, err := s.orders.UpdateStatusGuard(tx, order.ID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("order status changed concurrently, please retry")
		}
		return s.orders.CreateHistory(tx, &models.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: from,
			ToStatus:   to,
			ChangedBy:  actorID,
			Note:       note,
		})
	})
	if err != nil {
		return err
	}
	order.Status = to
	s.log.Info().Uint("order_id", order.ID).
		Str("from", string(from)).Str("to", string(to)).Msg("order transition")
	return nil
}

// ForceStatus is the admin override: it bypasses the transition table
// but still leaves a flagged history row.
func (s *OrderService) ForceStatus(adminID, orderID uint, to models.OrderStatus, reason string) (*models.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	from := order.Status
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orders.ForceStatus(tx, order.ID, to); err != nil {
			return err
		}
		return s.orders.CreateHistory(tx, &models.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: from,
			ToStatus:   to,
			ChangedBy:  adminID,
			Note:       "[ADMIN OVERRIDE] " + reason,
		})
	})
	if err != nil {
		return nil, err
	}
	order.Status = to
	s.log.Warn().Uint("order_id", order.ID).Uint("admin_id", adminID).
		Str("from", string(from)).Str("to", string(to)).Msg("order status forced")
	return order, nil
}
