package handlers

import (
	"context"
	"net/http"

	"agriadmin/models"
	"agriadmin/services"

	"github.com/gin-gonic/gin"
)

type CropStore interface {
	List(ctx context.Context, filter models.CropFilter) ([]models.Crop, error)
	Get(ctx context.Context, id string) (*models.Crop, error)
	Create(ctx context.Context, req models.CropRequest) (*models.Crop, error)
	Update(ctx context.Context, id string, req models.CropRequest) (*models.Crop, error)
	Delete(ctx context.Context, id string) error
}

// GetCrops godoc
// @Summary      List crops
// @Tags         Crops
// @Produce      json
// @Security     BearerAuth
// @Param        farm_id   query     string  false  "Farm"
// @Param        plant_id  query     int     false  "Plant"
// @Param        isactive  query     bool    false  "Active only"
// @Success      200       {array}   models.Crop
// @Router       /api/farmcrop/crops [get]
func GetCrops(crops CropStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.CropFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			badRequest(c, "Invalid filter", err)
			return
		}
		list, err := crops.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err, "Failed to fetch crops")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetCrop godoc
// @Summary      Get a crop
// @Tags         Crops
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Crop ID"
// @Success      200  {object}  models.Crop
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/farmcrop/crops/{id} [get]
func GetCrop(crops CropStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		crop, err := crops.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Crop not found")
			return
		}
		c.JSON(http.StatusOK, crop)
	}
}

// CreateCrop godoc
// @Summary      Plant a crop on a farm
// @Description  The plant is looked up by name and the duration is derived from the two dates.
// @Tags         Crops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      models.CropRequest  true  "Crop"
// @Success      201   {object}  models.Crop
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/farmcrop/addcrops [post]
func CreateCrop(crops CropStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CropRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid crop details", err)
			return
		}
		crop, err := crops.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, "Failed to add crop")
			return
		}
		c.JSON(http.StatusCreated, crop)
	}
}

// UpdateCrop godoc
// @Summary      Replace a crop
// @Tags         Crops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Crop ID"
// @Param        body  body      models.CropRequest  true  "Crop"
// @Success      200   {object}  models.Crop
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Router       /api/farmcrop/updatecrops/{id} [put]
func UpdateCrop(crops CropStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CropRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid crop details", err)
			return
		}
		crop, err := crops.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			respondError(c, err, "Failed to update crop")
			return
		}
		c.JSON(http.StatusOK, crop)
	}
}

// DeleteCrop godoc
// @Summary      Delete a crop
// @Tags         Crops
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Crop ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /api/farmcrop/deletecrops/{id} [delete]
func DeleteCrop(crops CropStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := crops.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err, "Failed to delete crop")
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Crop deleted successfully"})
	}
}

// ExportCrops godoc
// @Summary      Download crops as an Excel workbook
// @Tags         Crops
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}  file
// @Router       /api/farmcrop/crops/export [get]
func ExportCrops(crops CropStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.CropFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			badRequest(c, "Invalid filter", err)
			return
		}
		list, err := crops.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err, "Failed to fetch crops")
			return
		}
		data, err := services.CropsWorkbook(list)
		if err != nil {
			respondError(c, err, "Failed to build workbook")
			return
		}
		attachment(c, "crops.xlsx", services.XLSXContentType, data)
	}
}
