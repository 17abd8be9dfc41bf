package middleware

import (
	"net/http"

	"shopper-backend/models"

	"github.com/gin-gonic/gin"
)

const (
	AuthHeader    = "auth-token"
	ContextUserID = "user_id"
)

type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// AuthMiddleware resolves the auth-token header into a user id stored on the
// context under ContextUserID.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AuthHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.AuthErrorResponse{
				Errors: "Please authenticate using a valid token",
			})
			return
		}

		userID, err := verifier.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.AuthErrorResponse{
				Errors: "Please authenticate using a valid token",
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
