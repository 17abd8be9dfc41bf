package controllers

import (
	"net/http"

	"shopper-backend/models"
	"shopper-backend/services"
	"shopper-backend/utils"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	uploads *services.UploadService
}

func NewUploadController(uploads *services.UploadService) *UploadController {
	return &UploadController{uploads: uploads}
}

// Upload godoc
// @Summary Upload product image
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param product formData file true "Image file"
// @Success 200 {object} models.UploadResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /upload [post]
func (ctrl *UploadController) Upload(c *gin.Context) {
	file, err := c.FormFile(utils.ImageFieldName)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Image file required",
			Error:   err.Error(),
		})
		return
	}

	url, err := ctrl.uploads.Upload(c.Request.Context(), file)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{Success: 1, ImageURL: url})
}
