package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-management-api/groups"
	"restaurant-management-api/middleware"
	"restaurant-management-api/models"
	"restaurant-management-api/policy"
)

type MembershipRequest struct {
	Username string `json:"username" binding:"required"`
}

func listMembers(c *gin.Context, group string) {
	identity := middleware.CurrentIdentity(c)
	members, err := groupMgr.List(c.Request.Context(), identity, group)
	switch {
	case errors.Is(err, policy.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list members"})
	default:
		c.JSON(http.StatusOK, gin.H{"count": len(members), "users": members})
	}
}

func mutateMembership(c *gin.Context, group string, remove bool) {
	identity := middleware.CurrentIdentity(c)

	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var err error
	var message string
	if remove {
		err = groupMgr.Remove(c.Request.Context(), identity, group, req.Username)
		message = "user removed from the " + group + " group"
	} else {
		err = groupMgr.Add(c.Request.Context(), identity, group, req.Username)
		message = "user added to the " + group + " group"
	}

	switch {
	case errors.Is(err, policy.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
	case errors.Is(err, groups.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update membership"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}

// ListManagers returns Manager group members — admin only
func ListManagers(c *gin.Context) { listMembers(c, models.GroupManager) }

// AddManager puts a user into the Manager group — admin only
func AddManager(c *gin.Context) { mutateMembership(c, models.GroupManager, false) }

// RemoveManager takes a user out of the Manager group — admin only
func RemoveManager(c *gin.Context) { mutateMembership(c, models.GroupManager, true) }

// ListDeliveryCrew returns Delivery Crew members — any authenticated caller
func ListDeliveryCrew(c *gin.Context) { listMembers(c, models.GroupDeliveryCrew) }

// AddDeliveryCrew puts a user into the Delivery Crew group — admin or manager
func AddDeliveryCrew(c *gin.Context) { mutateMembership(c, models.GroupDeliveryCrew, false) }

// RemoveDeliveryCrew takes a user out of the Delivery Crew group — admin or manager
func RemoveDeliveryCrew(c *gin.Context) { mutateMembership(c, models.GroupDeliveryCrew, true) }
