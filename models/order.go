package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus tracks delivery progress. New orders start with the zero value
// until a manager assigns a crew member.
type OrderStatus string

const (
	StatusNotDelivered OrderStatus = "NOT_DELIVERED"
	StatusDelivered    OrderStatus = "DELIVERED"
)

// CartItem is one pending line in a user's cart. UnitPrice is snapshotted
// from the menu item when the line is added; Price is UnitPrice * Quantity.
type CartItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	MenuItemID uint            `json:"menu_item_id" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	MenuItem   MenuItem        `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:numeric;not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:numeric;not null"`
}

type Order struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	UserID         uint            `json:"user_id" gorm:"not null;index"`
	User           User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	DeliveryCrewID *uint           `json:"delivery_crew_id" gorm:"index"`
	DeliveryCrew   *User           `json:"delivery_crew,omitempty" gorm:"foreignKey:DeliveryCrewID"`
	Status         OrderStatus     `json:"status"`
	Total          decimal.Decimal `json:"total" gorm:"type:numeric;not null"`
	Date           time.Time       `json:"date" gorm:"not null"`
	Items          []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderItem is an immutable snapshot of one cart line at conversion time.
// UnitPrice never changes afterward, even if the menu item is re-priced.
type OrderItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order_id" gorm:"not null;index"`
	MenuItemID uint            `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem        `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:numeric;not null"`
}
