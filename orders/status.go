package orders

import (
	"errors"

	"restaurant-management-api/models"
)

// statusTransition is one permitted status change. Delivery status only
// moves forward: unset -> NOT_DELIVERED -> DELIVERED.
type statusTransition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

var validStatusTransitions = map[statusTransition]bool{
	{From: "", To: models.StatusNotDelivered}:                        true,
	{From: models.StatusNotDelivered, To: models.StatusDelivered}:    true,
	{From: models.StatusNotDelivered, To: models.StatusNotDelivered}: true,
	{From: models.StatusDelivered, To: models.StatusDelivered}:       true,
}

// CanTransitionStatus reports whether an order may move from one delivery
// status to another. Setting the current status again is a no-op success.
func CanTransitionStatus(from, to models.OrderStatus) error {
	if validStatusTransitions[statusTransition{From: from, To: to}] {
		return nil
	}
	return errors.New("invalid status transition: " + string(from) + " -> " + string(to))
}
