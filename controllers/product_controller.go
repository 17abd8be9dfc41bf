package controllers

import (
	"context"
	"net/http"

	"shopper-backend/models"
	"shopper-backend/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// AddProduct godoc
// @Summary Create product
// @Description The id is assigned by the server: 0 for the first product, then max+1.
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product"
// @Success 200 {object} models.ProductNameResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /addproduct [post]
func (ctrl *ProductController) AddProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	product, err := ctrl.products.AddProduct(c.Request.Context(), req)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ProductNameResponse{Success: true, Name: product.Name})
}

// RemoveProduct godoc
// @Summary Delete product by id
// @Description Removing an unknown id still reports success.
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.RemoveProductRequest true "Product id"
// @Success 200 {object} models.ProductNameResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /removeproduct [post]
func (ctrl *ProductController) RemoveProduct(c *gin.Context) {
	var req models.RemoveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	name, err := ctrl.products.RemoveProduct(c.Request.Context(), *req.ID)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ProductNameResponse{Success: true, Name: name})
}

// AllProducts godoc
// @Summary List catalog
// @Tags Products
// @Produce json
// @Success 200 {array} models.Product
// @Router /allproducts [get]
func (ctrl *ProductController) AllProducts(c *gin.Context) {
	ctrl.respondList(c, ctrl.products.ListAll)
}

// NewCollections godoc
// @Summary Last 8 products added
// @Tags Products
// @Produce json
// @Success 200 {array} models.Product
// @Router /newcollections [get]
func (ctrl *ProductController) NewCollections(c *gin.Context) {
	ctrl.respondList(c, ctrl.products.ListNewCollections)
}

// PopularInWomen godoc
// @Summary First 4 products in the women category
// @Tags Products
// @Produce json
// @Success 200 {array} models.Product
// @Router /popularinwomen [get]
func (ctrl *ProductController) PopularInWomen(c *gin.Context) {
	ctrl.respondList(c, ctrl.products.ListPopularInWomen)
}

// RelatedProducts godoc
// @Summary First 4 products of a category
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.RelatedProductsRequest true "Category"
// @Success 200 {array} models.Product
// @Router /relatedproducts [post]
func (ctrl *ProductController) RelatedProducts(c *gin.Context) {
	var req models.RelatedProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	products, err := ctrl.products.ListRelated(c.Request.Context(), req.Category)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (ctrl *ProductController) respondList(c *gin.Context, list func(ctx context.Context) ([]models.Product, error)) {
	products, err := list(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}
