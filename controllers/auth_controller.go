package controllers

import (
	"errors"
	"net/http"

	"shopper-backend/models"
	"shopper-backend/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Signup godoc
// @Summary Register new user
// @Description Create an account with an empty cart and return a session token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup Request"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} models.TokenResponse
// @Router /signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	token, err := ctrl.auth.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if errors.Is(err, services.ErrDuplicateEmail) {
		c.JSON(http.StatusBadRequest, models.TokenResponse{
			Success: false,
			Errors:  "existing user found with same email address",
		})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Success: true, Token: token})
}

// Login godoc
// @Summary User login
// @Description Login with email and password. Bad credentials answer 200 with success=false.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.TokenResponse
// @Router /login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	token, err := ctrl.auth.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidEmail):
		c.JSON(http.StatusOK, models.TokenResponse{Success: false, Errors: "Wrong Email Id"})
	case errors.Is(err, services.ErrInvalidPassword):
		c.JSON(http.StatusOK, models.TokenResponse{Success: false, Errors: "Wrong Password"})
	case err != nil:
		serverError(c, err)
	default:
		c.JSON(http.StatusOK, models.TokenResponse{Success: true, Token: token})
	}
}

// Profile godoc
// @Summary Current user
// @Tags Authentication
// @Security AuthToken
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} models.AuthErrorResponse
// @Router /profile [get]
func (ctrl *AuthController) Profile(c *gin.Context) {
	user, err := ctrl.auth.Profile(c.Request.Context(), currentUserID(c))
	if err != nil {
		userFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
