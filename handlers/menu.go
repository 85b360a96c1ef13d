package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"restaurant-management-api/config"
	"restaurant-management-api/middleware"
	"restaurant-management-api/models"
	"restaurant-management-api/policy"
)

// requireCapability consults the per-operation capability table and writes
// the 403 itself when the caller falls short.
func requireCapability(c *gin.Context, op policy.Operation) bool {
	if policy.Allowed(middleware.CurrentIdentity(c), op) {
		return true
	}
	c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
	return false
}

// ListCategories returns all menu categories
func ListCategories(c *gin.Context) {
	if !requireCapability(c, policy.OpBrowseCatalog) {
		return
	}
	var categories []models.Category
	config.DB.Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

type CategoryRequest struct {
	Slug  string `json:"slug" binding:"required"`
	Title string `json:"title" binding:"required"`
}

// CreateCategory adds a menu category — admin only
func CreateCategory(c *gin.Context) {
	if !requireCapability(c, policy.OpManageCatalog) {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category := models.Category{Slug: req.Slug, Title: req.Title}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// ListMenuItems returns the menu, optionally filtered by category
func ListMenuItems(c *gin.Context) {
	if !requireCapability(c, policy.OpBrowseCatalog) {
		return
	}
	var items []models.MenuItem
	query := config.DB.Preload("Category")
	if category := c.Query("category"); category != "" {
		query = query.Joins("JOIN categories ON categories.id = menu_items.category_id").
			Where("categories.slug = ?", category)
	}
	if featured := c.Query("featured"); featured == "true" {
		query = query.Where("featured = ?", true)
	}
	query.Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu_items": items})
}

type MenuItemRequest struct {
	Title      string          `json:"title" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Featured   bool            `json:"featured"`
	CategoryID uint            `json:"category_id" binding:"required"`
}

// CreateMenuItem adds a menu item — admin only
func CreateMenuItem(c *gin.Context) {
	if !requireCapability(c, policy.OpManageCatalog) {
		return
	}
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price.Sign() <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
		return
	}
	var category models.Category
	if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
		return
	}
	item := models.MenuItem{
		Title:      req.Title,
		Price:      req.Price,
		Featured:   req.Featured,
		CategoryID: req.CategoryID,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"menu_item": item})
}

// GetMenuItem returns a single menu item
func GetMenuItem(c *gin.Context) {
	if !requireCapability(c, policy.OpBrowseCatalog) {
		return
	}
	var item models.MenuItem
	if err := config.DB.Preload("Category").First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

// UpdateMenuItem updates a menu item — admin only. Existing order lines keep
// their snapshotted prices.
func UpdateMenuItem(c *gin.Context) {
	if !requireCapability(c, policy.OpManageCatalog) {
		return
	}
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price.Sign() <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
		return
	}
	item.Title = req.Title
	item.Price = req.Price
	item.Featured = req.Featured
	item.CategoryID = req.CategoryID
	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

// DeleteMenuItem removes a menu item — admin only
func DeleteMenuItem(c *gin.Context) {
	if !requireCapability(c, policy.OpManageCatalog) {
		return
	}
	result := config.DB.Delete(&models.MenuItem{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
