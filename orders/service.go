package orders

import (
	"context"

	"restaurant-management-api/models"
	"restaurant-management-api/policy"
)

// Service exposes the read and update paths over orders, gated by the access
// policy. Every operation takes the caller's identity explicitly.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Visible lists the orders the caller may see, per the visibility scope.
func (s *Service) Visible(ctx context.Context, id policy.Identity) ([]models.Order, error) {
	return s.store.OrdersInScope(ctx, policy.VisibleOrders(id))
}

// Get retrieves a single order if the caller passes the single-order read
// rule. Denials surface as policy.ErrForbidden, missing orders as
// ErrOrderNotFound.
func (s *Service) Get(ctx context.Context, id policy.Identity, orderID uint) (*models.Order, error) {
	order, err := s.store.OrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := policy.CanReadOrder(id, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Update carries the mutable order fields. Nil means "leave unchanged".
type Update struct {
	DeliveryCrewID *uint
	Status         *models.OrderStatus
}

// Update applies a partial update after the write gate and field-level
// checks. Managers and superusers may assign delivery crew and set status;
// delivery crew members may only set status on orders assigned to them.
func (s *Service) Update(ctx context.Context, id policy.Identity, orderID uint, upd Update) (*models.Order, error) {
	if err := policy.CanUpdateOrder(id); err != nil {
		return nil, err
	}

	order, err := s.store.OrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	crewOnly := !id.IsSuperuser && !id.InGroup(models.GroupManager)
	if crewOnly {
		if upd.DeliveryCrewID != nil {
			return nil, policy.ErrForbidden
		}
		if order.DeliveryCrewID == nil || *order.DeliveryCrewID != id.ID {
			return nil, policy.ErrForbidden
		}
	}

	if upd.DeliveryCrewID != nil {
		isCrew, err := s.store.IsDeliveryCrew(ctx, *upd.DeliveryCrewID)
		if err != nil {
			return nil, err
		}
		if !isCrew {
			return nil, ErrNotDeliveryCrew
		}
		order.DeliveryCrewID = upd.DeliveryCrewID
		// A freshly assigned order enters delivery tracking.
		if order.Status == "" && upd.Status == nil {
			order.Status = models.StatusNotDelivered
		}
	}

	if upd.Status != nil {
		if err := CanTransitionStatus(order.Status, *upd.Status); err != nil {
			return nil, err
		}
		order.Status = *upd.Status
	}

	if err := s.store.SaveOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
