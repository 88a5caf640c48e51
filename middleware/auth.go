// auth.go - Bearer token authentication middleware
//
// RequireUser aborts with 401 unless the request carries a token for an
// active user. OptionalUser never aborts; it only attaches the user when
// one resolves. Either way handlers read the result with CurrentUser.

package middleware

import (
	"errors"
	"net/http"

	"fruitpie-jobboard/domain"
	"fruitpie-jobboard/models"
	"fruitpie-jobboard/session"

	"github.com/gin-gonic/gin"
)

const userKey = "user"

// RequireUser resolves the bearer token or aborts with 401.
func RequireUser(resolver *session.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		// STEP 1: Pull the token out of "Authorization: Bearer <token>"
		token := session.BearerToken(c.GetHeader("Authorization")) // "" when absent or another scheme

		// STEP 2: Resolve it to an active user
		user, err := resolver.ResolveRequired(c.Request.Context(), token)
		if err != nil {
			msg := "Could not validate credentials"
			var appErr *domain.AppError
			if errors.As(err, &appErr) {
				msg = appErr.Message // Static text, same for every failure cause
			}
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": msg}) // Stop the chain with 401
			return
		}

		// STEP 3: Hand the user to the handler
		c.Set(userKey, user) // Read back with CurrentUser
		c.Next()
	}
}

// OptionalUser attaches the token's user when there is one and always continues.
func OptionalUser(resolver *session.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := session.BearerToken(c.GetHeader("Authorization"))
		if user := resolver.ResolveOptional(c.Request.Context(), token); user != nil {
			c.Set(userKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the user attached by RequireUser or OptionalUser, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User) // nil if something else was stored under the key
	return user
}
