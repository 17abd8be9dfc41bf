package controllers

import (
	"errors"
	"net/http"

	"shopper-backend/middleware"
	"shopper-backend/models"
	"shopper-backend/services"

	"github.com/gin-gonic/gin"
)

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid request",
		Error:   err.Error(),
	})
}

func serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Message: "Internal server error",
	})
}

// userFailure answers 401 when the token's user no longer exists.
func userFailure(c *gin.Context, err error) {
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusUnauthorized, models.AuthErrorResponse{
			Errors: "Please authenticate using a valid token",
		})
		return
	}
	serverError(c, err)
}

func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}
