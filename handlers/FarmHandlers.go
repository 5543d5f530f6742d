package handlers

import (
	"context"
	"net/http"

	"agriadmin/models"
	"agriadmin/services"

	"github.com/gin-gonic/gin"
)

type FarmStore interface {
	List(ctx context.Context, filter models.FarmFilter) ([]models.Farm, error)
	Get(ctx context.Context, id string) (*models.Farm, error)
	Create(ctx context.Context, req models.CreateFarmRequest) (string, error)
	Update(ctx context.Context, id string, req models.UpdateFarmRequest) error
	Delete(ctx context.Context, id string) error
}

// GetFarms godoc
// @Summary      List farms
// @Description  Filters are combined with AND.
// @Tags         Farms
// @Produce      json
// @Security     BearerAuth
// @Param        user_id        query     int     false  "Owner"
// @Param        soil_type_id   query     int     false  "Soil type"
// @Param        irrigation_id  query     int     false  "Irrigation method"
// @Param        water_src_id   query     int     false  "Water source"
// @Param        pincode        query     string  false  "Pincode"
// @Success      200            {array}   models.Farm
// @Router       /api/farmcrop/farms [get]
func GetFarms(farms FarmStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.FarmFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			badRequest(c, "Invalid filter", err)
			return
		}
		list, err := farms.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err, "Failed to fetch farms")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetFarm godoc
// @Summary      Get a farm with its soil, irrigation and water source
// @Tags         Farms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Farm ID"
// @Success      200  {object}  models.Farm
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/farmcrop/farms/{id} [get]
func GetFarm(farms FarmStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		farm, err := farms.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Farm not found")
			return
		}
		c.JSON(http.StatusOK, farm)
	}
}

// CreateFarm godoc
// @Summary      Create a farm
// @Description  Soil type, irrigation and water source are optional and written in the same transaction.
// @Tags         Farms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      models.CreateFarmRequest  true  "Farm"
// @Success      201   {object}  models.CreatedResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/farmcrop/addfarms [post]
func CreateFarm(farms FarmStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateFarmRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid farm details", err)
			return
		}
		id, err := farms.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, "Failed to add farm")
			return
		}
		c.JSON(http.StatusCreated, models.CreatedResponse{Message: "Farm added successfully", ID: id})
	}
}

// UpdateFarm godoc
// @Summary      Update a farm
// @Description  Farm columns are overwritten; omitted associations keep their current value.
// @Tags         Farms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Farm ID"
// @Param        body  body      models.UpdateFarmRequest  true  "Farm"
// @Success      200   {object}  models.MessageResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Router       /api/farmcrop/updatefarms/{id} [put]
func UpdateFarm(farms FarmStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateFarmRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid farm details", err)
			return
		}
		if err := farms.Update(c.Request.Context(), c.Param("id"), req); err != nil {
			respondError(c, err, "Failed to update farm")
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Farm updated successfully"})
	}
}

// DeleteFarm godoc
// @Summary      Delete a farm
// @Tags         Farms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Farm ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /api/farmcrop/deletefarms/{id} [delete]
func DeleteFarm(farms FarmStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := farms.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err, "Failed to delete farm")
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Farm deleted successfully"})
	}
}

// FarmQRCode godoc
// @Summary      Printable QR label for a farm
// @Tags         Farms
// @Produce      png
// @Security     BearerAuth
// @Param        id   path      string  true  "Farm ID"
// @Success      200  {file}    file    "PNG image"
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/farmcrop/farms/{id}/qrcode [get]
func FarmQRCode(farms FarmStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		farm, err := farms.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Farm not found")
			return
		}
		png, err := services.FarmLabel(*farm)
		if err != nil {
			respondError(c, err, "QR code generation failed")
			return
		}
		c.Header("Content-Disposition", "inline;filename=farm_"+farm.FarmID+".png")
		c.Data(http.StatusOK, "image/png", png)
	}
}

// ExportFarms godoc
// @Summary      Download farms as an Excel workbook
// @Tags         Farms
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}  file
// @Router       /api/farmcrop/farms/export [get]
func ExportFarms(farms FarmStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.FarmFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			badRequest(c, "Invalid filter", err)
			return
		}
		list, err := farms.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err, "Failed to fetch farms")
			return
		}
		data, err := services.FarmsWorkbook(list)
		if err != nil {
			respondError(c, err, "Failed to build workbook")
			return
		}
		attachment(c, "farms.xlsx", services.XLSXContentType, data)
	}
}
