package controllers

import (
	"net/http"

	"shopper-backend/models"
	"shopper-backend/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// AddToCart godoc
// @Summary Add one unit of an item to the cart
// @Tags Cart
// @Security AuthToken
// @Accept json
// @Produce plain
// @Param request body models.CartItemRequest true "Item"
// @Success 200 {string} string "Added"
// @Failure 401 {object} models.AuthErrorResponse
// @Router /addtocart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := ctrl.cart.AddItem(c.Request.Context(), currentUserID(c), string(req.ItemID)); err != nil {
		userFailure(c, err)
		return
	}
	c.String(http.StatusOK, "Added")
}

// RemoveFromCart godoc
// @Summary Remove one unit of an item from the cart
// @Description Quantities never drop below zero.
// @Tags Cart
// @Security AuthToken
// @Accept json
// @Produce plain
// @Param request body models.CartItemRequest true "Item"
// @Success 200 {string} string "Removed"
// @Failure 401 {object} models.AuthErrorResponse
// @Router /removefromcart [post]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	var req models.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := ctrl.cart.RemoveItem(c.Request.Context(), currentUserID(c), string(req.ItemID)); err != nil {
		userFailure(c, err)
		return
	}
	c.String(http.StatusOK, "Removed")
}

// GetCart godoc
// @Summary Fetch the cart map
// @Tags Cart
// @Security AuthToken
// @Produce json
// @Success 200 {object} models.Cart
// @Failure 401 {object} models.AuthErrorResponse
// @Router /getcart [post]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.cart.GetCart(c.Request.Context(), currentUserID(c))
	if err != nil {
		userFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}
