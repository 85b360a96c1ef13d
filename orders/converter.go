package orders

import (
	"context"
	"time"

	"restaurant-management-api/models"
	"restaurant-management-api/policy"
)

// Converter turns a user's cart into a persisted order. All writes happen in
// one transaction so a failure anywhere leaves no partial order and an
// untouched cart.
type Converter struct {
	store Store
	now   func() time.Time
}

func NewConverter(store Store) *Converter {
	return &Converter{store: store, now: time.Now}
}

// Convert reads the caller's cart, computes the total, creates the order and
// its line snapshots, and clears the cart. Returns ErrEmptyCart when there is
// nothing to convert.
func (cv *Converter) Convert(ctx context.Context, id policy.Identity) (*models.Order, error) {
	var order *models.Order
	err := cv.store.Transact(ctx, func(tx Store) error {
		lines, err := tx.CartLines(ctx, id.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		created := &models.Order{
			UserID: id.ID,
			Total:  Total(lines),
			Date:   cv.now(),
		}
		if err := tx.CreateOrder(ctx, created); err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, models.OrderItem{
				OrderID:    created.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
			})
		}
		if err := tx.CreateOrderItems(ctx, items); err != nil {
			return err
		}

		if err := tx.ClearCart(ctx, id.ID); err != nil {
			return err
		}

		created.Items = items
		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
