package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"restaurant-management-api/config"
	"restaurant-management-api/middleware"
	"restaurant-management-api/models"
)

// GetCart lists the caller's cart lines
func GetCart(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	var lines []models.CartItem
	config.DB.Preload("MenuItem").Where("user_id = ?", identity.ID).Order("id asc").Find(&lines)

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price)
	}
	c.JSON(http.StatusOK, gin.H{"count": len(lines), "items": lines, "total": total})
}

type AddToCartRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

// AddToCart puts a menu item into the caller's cart. The unit price is
// snapshotted from the menu at add time; re-adding an item replaces its
// quantity.
func AddToCart(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var menuItem models.MenuItem
	if err := config.DB.First(&menuItem, req.MenuItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	line := models.CartItem{
		UserID:     identity.ID,
		MenuItemID: menuItem.ID,
		Quantity:   req.Quantity,
		UnitPrice:  menuItem.Price,
		Price:      menuItem.Price.Mul(decimal.NewFromInt(int64(req.Quantity))),
	}

	var existing models.CartItem
	err := config.DB.Where("user_id = ? AND menu_item_id = ?", identity.ID, menuItem.ID).First(&existing).Error
	if err == nil {
		existing.Quantity = line.Quantity
		existing.UnitPrice = line.UnitPrice
		existing.Price = line.Price
		if err := config.DB.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "item": existing})
		return
	}

	if err := config.DB.Create(&line).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Added to cart", "item": line})
}

// ClearCart empties the caller's cart
func ClearCart(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if err := config.DB.Where("user_id = ?", identity.ID).Delete(&models.CartItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
