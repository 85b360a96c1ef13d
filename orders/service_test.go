package orders

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-management-api/models"
	"restaurant-management-api/policy"
)

func seedOrder(store *fakeStore, userID uint, crewID *uint, status models.OrderStatus) *models.Order {
	store.nextID++
	order := &models.Order{
		ID:             store.nextID,
		UserID:         userID,
		DeliveryCrewID: crewID,
		Status:         status,
		Total:          decimal.RequireFromString("22.50"),
	}
	store.orders[order.ID] = order
	return order
}

func TestVisibleFollowsScope(t *testing.T) {
	store := newFakeStore()
	crewID := uint(3)
	assigned := seedOrder(store, 2, &crewID, models.StatusNotDelivered)
	other := seedOrder(store, 8, nil, "")
	svc := NewService(store)
	ctx := context.Background()

	ids := func(list []models.Order) []uint {
		var out []uint
		for _, o := range list {
			out = append(out, o.ID)
		}
		return out
	}

	all, err := svc.Visible(ctx, policy.Identity{ID: 1, IsSuperuser: true})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{assigned.ID, other.ID}, ids(all))

	owned, err := svc.Visible(ctx, policy.Identity{ID: 2})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{assigned.ID}, ids(owned))

	crew, err := svc.Visible(ctx, policy.Identity{ID: 3, Groups: []string{models.GroupDeliveryCrew}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{assigned.ID}, ids(crew))

	unrelated, err := svc.Visible(ctx, policy.Identity{ID: 9})
	require.NoError(t, err)
	assert.Empty(t, unrelated)

	manager, err := svc.Visible(ctx, policy.Identity{ID: 4, Groups: []string{models.GroupManager}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{assigned.ID, other.ID}, ids(manager))
}

func TestGetAppliesReadRule(t *testing.T) {
	store := newFakeStore()
	crewID := uint(3)
	order := seedOrder(store, 2, &crewID, models.StatusNotDelivered)
	svc := NewService(store)
	ctx := context.Background()

	got, err := svc.Get(ctx, policy.Identity{ID: 2}, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = svc.Get(ctx, policy.Identity{ID: 5, Groups: []string{models.GroupDeliveryCrew}}, order.ID)
	assert.ErrorIs(t, err, policy.ErrForbidden)

	_, err = svc.Get(ctx, policy.Identity{ID: 2}, 999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateWriteGate(t *testing.T) {
	store := newFakeStore()
	order := seedOrder(store, 2, nil, "")
	svc := NewService(store)

	status := models.StatusDelivered
	_, err := svc.Update(context.Background(), policy.Identity{ID: 2}, order.ID, Update{Status: &status})
	assert.ErrorIs(t, err, policy.ErrCannotUpdate)
	assert.Empty(t, store.orders[order.ID].Status)
}

func TestUpdateManagerAssignsCrew(t *testing.T) {
	store := newFakeStore()
	store.crew[3] = true
	order := seedOrder(store, 2, nil, "")
	svc := NewService(store)
	manager := policy.Identity{ID: 4, Groups: []string{models.GroupManager}}

	crewID := uint(3)
	updated, err := svc.Update(context.Background(), manager, order.ID, Update{DeliveryCrewID: &crewID})
	require.NoError(t, err)
	require.NotNil(t, updated.DeliveryCrewID)
	assert.Equal(t, crewID, *updated.DeliveryCrewID)
	assert.Equal(t, models.StatusNotDelivered, updated.Status)

	// Assigning someone outside the delivery crew is rejected.
	outsider := uint(8)
	_, err = svc.Update(context.Background(), manager, order.ID, Update{DeliveryCrewID: &outsider})
	assert.ErrorIs(t, err, ErrNotDeliveryCrew)
}

func TestUpdateCrewMemberSetsStatusOnly(t *testing.T) {
	store := newFakeStore()
	store.crew[3] = true
	crewID := uint(3)
	mine := seedOrder(store, 2, &crewID, models.StatusNotDelivered)
	notMine := seedOrder(store, 2, nil, "")
	svc := NewService(store)
	crew := policy.Identity{ID: 3, Groups: []string{models.GroupDeliveryCrew}}
	ctx := context.Background()

	status := models.StatusDelivered
	updated, err := svc.Update(ctx, crew, mine.ID, Update{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, updated.Status)

	// Not assigned to this order.
	_, err = svc.Update(ctx, crew, notMine.ID, Update{Status: &status})
	assert.ErrorIs(t, err, policy.ErrForbidden)

	// Crew may not reassign delivery.
	other := uint(9)
	_, err = svc.Update(ctx, crew, mine.ID, Update{DeliveryCrewID: &other})
	assert.ErrorIs(t, err, policy.ErrForbidden)
}

func TestUpdateStatusTransitions(t *testing.T) {
	store := newFakeStore()
	order := seedOrder(store, 2, nil, models.StatusDelivered)
	svc := NewService(store)
	manager := policy.Identity{ID: 4, Groups: []string{models.GroupManager}}

	// Delivered is terminal; moving back is rejected.
	status := models.StatusNotDelivered
	_, err := svc.Update(context.Background(), manager, order.ID, Update{Status: &status})
	assert.Error(t, err)
	assert.Equal(t, models.StatusDelivered, store.orders[order.ID].Status)
}
