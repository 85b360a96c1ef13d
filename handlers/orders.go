package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-management-api/middleware"
	"restaurant-management-api/models"
	"restaurant-management-api/orders"
	"restaurant-management-api/policy"
)

// ListOrders returns the orders visible to the caller per the access policy
func ListOrders(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	visible, err := orderSvc.Visible(c.Request.Context(), identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(visible), "orders": visible})
}

// CreateOrder converts the caller's cart into an order. An empty cart is a
// reported outcome, not an error status.
func CreateOrder(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	order, err := converter.Convert(c.Request.Context(), identity)
	if err != nil {
		if errors.Is(err, orders.ErrEmptyCart) {
			c.JSON(http.StatusOK, gin.H{"message": "no item in cart"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return 0, false
	}
	return uint(id), true
}

// GetOrder returns a single order if the caller passes the read rule
func GetOrder(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}
	order, err := orderSvc.Get(c.Request.Context(), identity, orderID)
	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, policy.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
	default:
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

type UpdateOrderRequest struct {
	DeliveryCrewID *uint               `json:"delivery_crew_id"`
	Status         *models.OrderStatus `json:"status" binding:"omitempty,oneof=NOT_DELIVERED DELIVERED"`
}

// UpdateOrder applies a partial update through the write gate
func UpdateOrder(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orderSvc.Update(c.Request.Context(), identity, orderID, orders.Update{
		DeliveryCrewID: req.DeliveryCrewID,
		Status:         req.Status,
	})
	switch {
	case errors.Is(err, policy.ErrCannotUpdate):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, policy.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, orders.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, orders.ErrNotDeliveryCrew):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Order updated", "order": order})
	}
}
