package policy

import (
	"errors"

	"restaurant-management-api/models"
)

var (
	// ErrForbidden means the caller lacks the role or ownership the
	// requested access requires.
	ErrForbidden = errors.New("you are not allowed to access this order")
	// ErrCannotUpdate means a plain customer tried to mutate an order.
	ErrCannotUpdate = errors.New("this user cannot update the order")
)

// ScopeKind selects which WHERE clause the storage layer applies when
// listing orders.
type ScopeKind int

const (
	ScopeAll ScopeKind = iota
	ScopeOwnedBy
	ScopeAssignedTo
)

// OrderScope describes the set of orders visible to a caller. UserID is the
// filter value for ScopeOwnedBy and ScopeAssignedTo.
type OrderScope struct {
	Kind   ScopeKind
	UserID uint
}

// VisibleOrders maps the caller to a listing scope. Superusers and staff see
// everything, customers see their own orders, delivery crew see orders
// assigned to them.
func VisibleOrders(id Identity) OrderScope {
	switch Classify(id) {
	case ClassSuperuser:
		return OrderScope{Kind: ScopeAll}
	case ClassCustomer:
		return OrderScope{Kind: ScopeOwnedBy, UserID: id.ID}
	case ClassDeliveryCrew:
		return OrderScope{Kind: ScopeAssignedTo, UserID: id.ID}
	default:
		return OrderScope{Kind: ScopeAll}
	}
}

// CanReadOrder gates single-order retrieval. Deliberately stricter than
// VisibleOrders: a non-crew staff member is treated like a customer here and
// may only read their own orders.
func CanReadOrder(id Identity, order *models.Order) error {
	if id.IsSuperuser {
		return nil
	}
	if id.InGroup(models.GroupDeliveryCrew) {
		if order.DeliveryCrewID != nil && *order.DeliveryCrewID == id.ID {
			return nil
		}
		return ErrForbidden
	}
	if order.UserID == id.ID {
		return nil
	}
	return ErrForbidden
}

// CanUpdateOrder gates the order update path. Customers with no group
// memberships may never mutate an order after creation; everyone else
// proceeds to field-level checks.
func CanUpdateOrder(id Identity) error {
	if !id.IsSuperuser && len(id.Groups) == 0 {
		return ErrCannotUpdate
	}
	return nil
}
