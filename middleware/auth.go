package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"restaurant-management-api/config"
	"restaurant-management-api/models"
	"restaurant-management-api/policy"
)

const identityKey = "identity"

type Claims struct {
	UserID      uint     `json:"user_id"`
	Username    string   `json:"username"`
	IsSuperuser bool     `json:"is_superuser"`
	Groups      []string `json:"groups"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given user
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:      user.ID,
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
		Groups:      user.GroupNames(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AuthRequired validates the JWT and injects the caller identity into the
// request context. Everything downstream receives the identity explicitly.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set(identityKey, policy.Identity{
			ID:          claims.UserID,
			Username:    claims.Username,
			IsSuperuser: claims.IsSuperuser,
			Groups:      claims.Groups,
		})
		c.Next()
	}
}

// CurrentIdentity extracts the caller identity injected by AuthRequired.
func CurrentIdentity(c *gin.Context) policy.Identity {
	val, _ := c.Get(identityKey)
	return val.(policy.Identity)
}
