package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	customerRepo "driveacademy/database/repository/customer"
	staffRepo "driveacademy/database/repository/staff"
	"driveacademy/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Context keys set by the auth middlewares.
const (
	ContextCustomerID = "customerID"
	ContextStaffID    = "staffID"
	ContextStaffRole  = "staffRole"
)

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// verifyTokenHash checks the presented token's hash against the auth cache,
// falling back to the stored hash loaded by lookup on a miss. A valid
// fallback result is written back to the cache.
func verifyTokenHash(subjectID, tokenString string, lookup func(id string) (string, error)) bool {
	computed := utils.HashToken(tokenString)
	cacheKey := utils.AuthCachePrefix + subjectID
	ctx := context.Background()

	authCache := utils.GetAuthCacheClient()
	cacheEnabled := authCache != nil

	if cacheEnabled {
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash == computed {
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				return true
			}
			return false
		}
		if err != redis.Nil {
			log.Printf("WARNING: error retrieving auth cache key: %v, falling back to DB lookup", err)
		}
	}

	storedHash, err := lookup(subjectID)
	if err != nil || storedHash == "" || storedHash != computed {
		return false
	}

	if cacheEnabled {
		_ = authCache.Set(ctx, cacheKey, computed, utils.AuthCacheTTL).Err()
	}
	return true
}

// CustomerAuthMiddleware authenticates customer tokens and sets the customer
// ID on the request context.
func CustomerAuthMiddleware(repo customerRepo.CustomerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		claims, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || claims.Audience != utils.AudienceCustomer {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		ok := verifyTokenHash(claims.Subject, tokenString, func(id string) (string, error) {
			cust, err := repo.GetByID(id)
			if err != nil {
				return "", err
			}
			return cust.TokenHash, nil
		})
		if !ok {
			abortUnauthorized(c, "Token mismatch")
			return
		}

		c.Set(ContextCustomerID, claims.Subject)
		c.Next()
	}
}

// StaffAuthMiddleware authenticates staff tokens and sets the staff ID and
// role on the request context.
func StaffAuthMiddleware(repo staffRepo.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		claims, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || claims.Audience != utils.AudienceStaff {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		ok := verifyTokenHash(claims.Subject, tokenString, func(id string) (string, error) {
			member, err := repo.GetByID(id)
			if err != nil {
				return "", err
			}
			return member.TokenHash, nil
		})
		if !ok {
			abortUnauthorized(c, "Token mismatch")
			return
		}

		c.Set(ContextStaffID, claims.Subject)
		c.Set(ContextStaffRole, claims.Role)
		c.Next()
	}
}

// RequireRoles restricts a staff route to the given roles. It must run after
// StaffAuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextStaffRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}
