package orders

import (
	"context"
	"errors"

	"restaurant-management-api/models"
	"restaurant-management-api/policy"
)

var (
	// ErrEmptyCart is reported when a conversion is attempted with no cart
	// lines. It is an informational outcome, not a server error.
	ErrEmptyCart = errors.New("no item in cart")
	// ErrOrderNotFound is reported when the referenced order does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrNotDeliveryCrew is reported when an order update tries to assign a
	// user who is not in the Delivery Crew group.
	ErrNotDeliveryCrew = errors.New("assigned user is not in the delivery crew")
)

// Store is the persistence boundary for carts and orders. Transact runs fn
// inside a single transaction; CartLines called within that transaction must
// lock the rows so two concurrent conversions for the same user serialize.
type Store interface {
	Transact(ctx context.Context, fn func(tx Store) error) error
	CartLines(ctx context.Context, userID uint) ([]models.CartItem, error)
	ClearCart(ctx context.Context, userID uint) error
	CreateOrder(ctx context.Context, order *models.Order) error
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	OrderByID(ctx context.Context, orderID uint) (*models.Order, error)
	OrdersInScope(ctx context.Context, scope policy.OrderScope) ([]models.Order, error)
	SaveOrder(ctx context.Context, order *models.Order) error
	IsDeliveryCrew(ctx context.Context, userID uint) (bool, error)
}
