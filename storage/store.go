package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"restaurant-management-api/models"
	"restaurant-management-api/orders"
	"restaurant-management-api/policy"
)

// Store is the gorm-backed implementation of orders.Store.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transact runs fn in a single database transaction. SQLite serializes
// writing transactions, so a concurrent conversion for the same user waits
// for the first to commit and then sees the already-cleared cart.
func (s *Store) Transact(ctx context.Context, fn func(tx orders.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) CartLines(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var lines []models.CartItem
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&lines).Error
	return lines, err
}

func (s *Store) ClearCart(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}

func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *Store) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&items).Error
}

func (s *Store) OrderByID(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items.MenuItem").
		First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, orders.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) OrdersInScope(ctx context.Context, scope policy.OrderScope) ([]models.Order, error) {
	query := s.db.WithContext(ctx).Preload("Items.MenuItem").Order("date desc")
	switch scope.Kind {
	case policy.ScopeOwnedBy:
		query = query.Where("user_id = ?", scope.UserID)
	case policy.ScopeAssignedTo:
		query = query.Where("delivery_crew_id = ?", scope.UserID)
	}
	var result []models.Order
	err := query.Find(&result).Error
	return result, err
}

// SaveOrder persists the order's own columns. Associations are snapshots
// and never written back.
func (s *Store) SaveOrder(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(order).Error
}

func (s *Store) IsDeliveryCrew(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Table("user_groups").
		Joins("JOIN groups ON groups.id = user_groups.group_id").
		Where("user_groups.user_id = ? AND groups.name = ?", userID, models.GroupDeliveryCrew).
		Count(&count).Error
	return count > 0, err
}
