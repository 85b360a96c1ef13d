package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-management-api/models"
	"restaurant-management-api/policy"
)

// fakeStore keeps everything in memory and simulates transaction rollback by
// restoring a snapshot when the transaction callback fails. Individual
// operations can be made to fail to probe atomicity.
type fakeStore struct {
	carts  map[uint][]models.CartItem
	orders map[uint]*models.Order
	items  []models.OrderItem
	crew   map[uint]bool
	nextID uint

	createOrderErr error
	createItemsErr error
	clearCartErr   error
	saveOrderErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		carts:  map[uint][]models.CartItem{},
		orders: map[uint]*models.Order{},
		crew:   map[uint]bool{},
	}
}

func (f *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	for k, v := range f.carts {
		cp.carts[k] = append([]models.CartItem(nil), v...)
	}
	for k, v := range f.orders {
		o := *v
		cp.orders[k] = &o
	}
	cp.items = append([]models.OrderItem(nil), f.items...)
	for k, v := range f.crew {
		cp.crew[k] = v
	}
	cp.nextID = f.nextID
	return cp
}

func (f *fakeStore) restore(snap *fakeStore) {
	f.carts = snap.carts
	f.orders = snap.orders
	f.items = snap.items
	f.crew = snap.crew
	f.nextID = snap.nextID
}

func (f *fakeStore) Transact(ctx context.Context, fn func(tx Store) error) error {
	snap := f.snapshot()
	if err := fn(f); err != nil {
		f.restore(snap)
		return err
	}
	return nil
}

func (f *fakeStore) CartLines(ctx context.Context, userID uint) ([]models.CartItem, error) {
	return f.carts[userID], nil
}

func (f *fakeStore) ClearCart(ctx context.Context, userID uint) error {
	if f.clearCartErr != nil {
		return f.clearCartErr
	}
	delete(f.carts, userID)
	return nil
}

func (f *fakeStore) CreateOrder(ctx context.Context, order *models.Order) error {
	if f.createOrderErr != nil {
		return f.createOrderErr
	}
	f.nextID++
	order.ID = f.nextID
	f.orders[order.ID] = order
	return nil
}

func (f *fakeStore) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	if f.createItemsErr != nil {
		return f.createItemsErr
	}
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeStore) OrderByID(ctx context.Context, orderID uint) (*models.Order, error) {
	order, ok := f.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	cp := *order
	return &cp, nil
}

func (f *fakeStore) OrdersInScope(ctx context.Context, scope policy.OrderScope) ([]models.Order, error) {
	var result []models.Order
	for _, o := range f.orders {
		switch scope.Kind {
		case policy.ScopeOwnedBy:
			if o.UserID != scope.UserID {
				continue
			}
		case policy.ScopeAssignedTo:
			if o.DeliveryCrewID == nil || *o.DeliveryCrewID != scope.UserID {
				continue
			}
		}
		result = append(result, *o)
	}
	return result, nil
}

func (f *fakeStore) SaveOrder(ctx context.Context, order *models.Order) error {
	if f.saveOrderErr != nil {
		return f.saveOrderErr
	}
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeStore) IsDeliveryCrew(ctx context.Context, userID uint) (bool, error) {
	return f.crew[userID], nil
}

func cartLine(userID, menuItemID uint, price string, qty int) models.CartItem {
	unit := decimal.RequireFromString(price)
	return models.CartItem{
		UserID:     userID,
		MenuItemID: menuItemID,
		Quantity:   qty,
		UnitPrice:  unit,
		Price:      unit.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func TestConvertComputesExactTotal(t *testing.T) {
	store := newFakeStore()
	store.carts[7] = []models.CartItem{
		cartLine(7, 1, "10.00", 2), // pizza
		cartLine(7, 2, "2.50", 1),  // soda
	}
	cv := NewConverter(store)
	cv.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	order, err := cv.Convert(context.Background(), policy.Identity{ID: 7})
	require.NoError(t, err)

	assert.True(t, order.Total.Equal(decimal.RequireFromString("22.50")),
		"total = %s", order.Total)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, uint(7), order.UserID)
	assert.NotZero(t, order.ID)
	assert.Empty(t, order.Status)
	assert.Nil(t, order.DeliveryCrewID)

	// Snapshots carry the cart's prices unchanged.
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, 2, order.Items[0].Quantity)

	// The cart is empty afterward.
	assert.Empty(t, store.carts[7])
}

func TestConvertDecimalAccumulation(t *testing.T) {
	// 10 lines of 0.10 must sum to exactly 1.00, no float drift.
	store := newFakeStore()
	for i := 0; i < 10; i++ {
		store.carts[3] = append(store.carts[3], cartLine(3, uint(i+1), "0.10", 1))
	}
	cv := NewConverter(store)

	order, err := cv.Convert(context.Background(), policy.Identity{ID: 3})
	require.NoError(t, err)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("1.00")),
		"total = %s", order.Total)
}

func TestConvertEmptyCart(t *testing.T) {
	store := newFakeStore()
	cv := NewConverter(store)

	order, err := cv.Convert(context.Background(), policy.Identity{ID: 7})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, order)
	assert.Empty(t, store.orders)
	assert.Empty(t, store.items)
}

func TestConvertRollsBackOnFailure(t *testing.T) {
	boom := errors.New("persistence failure")
	tests := map[string]func(*fakeStore){
		"order create fails": func(f *fakeStore) { f.createOrderErr = boom },
		"item create fails":  func(f *fakeStore) { f.createItemsErr = boom },
		"cart clear fails":   func(f *fakeStore) { f.clearCartErr = boom },
	}
	for name, inject := range tests {
		t.Run(name, func(t *testing.T) {
			store := newFakeStore()
			store.carts[7] = []models.CartItem{cartLine(7, 1, "10.00", 2)}
			inject(store)

			cv := NewConverter(store)
			_, err := cv.Convert(context.Background(), policy.Identity{ID: 7})
			require.ErrorIs(t, err, boom)

			// No partial state: no order, no lines, cart untouched.
			assert.Empty(t, store.orders)
			assert.Empty(t, store.items)
			assert.Len(t, store.carts[7], 1)
		})
	}
}

func TestConvertIndependentUsers(t *testing.T) {
	store := newFakeStore()
	store.carts[1] = []models.CartItem{cartLine(1, 1, "5.00", 1)}
	store.carts[2] = []models.CartItem{cartLine(2, 1, "5.00", 3)}
	cv := NewConverter(store)

	_, err := cv.Convert(context.Background(), policy.Identity{ID: 1})
	require.NoError(t, err)

	// User 2's cart is untouched by user 1's conversion.
	assert.Len(t, store.carts[2], 1)

	order2, err := cv.Convert(context.Background(), policy.Identity{ID: 2})
	require.NoError(t, err)
	assert.True(t, order2.Total.Equal(decimal.RequireFromString("15.00")))
}
