package handlers

import (
	"context"
	"net/http"
	"strconv"

	"agriadmin/models"

	"github.com/gin-gonic/gin"
)

type SubsidyStore interface {
	List(ctx context.Context, filter models.SubsidyFilter) ([]models.Subsidy, error)
	Get(ctx context.Context, id int64) (*models.Subsidy, error)
	Create(ctx context.Context, req models.SubsidyRequest) (int64, error)
	Update(ctx context.Context, id int64, req models.SubsidyRequest) error
	Delete(ctx context.Context, id int64) error
}

// GetSubsidies godoc
// @Summary      List subsidies
// @Tags         Subsidies
// @Produce      json
// @Param        state_id  query     int  false  "Filter by state"
// @Success      200       {array}   models.Subsidy
// @Router       /api/subsidies/getSubsidy [get]
func GetSubsidies(subsidies SubsidyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.SubsidyFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			badRequest(c, "Invalid filter", err)
			return
		}
		list, err := subsidies.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err, "Failed to fetch subsidies")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetSubsidy godoc
// @Summary      Get a subsidy
// @Tags         Subsidies
// @Produce      json
// @Param        subsidyid  path      int  true  "Subsidy ID"
// @Success      200        {object}  models.Subsidy
// @Failure      404        {object}  models.ErrorResponse
// @Router       /api/subsidies/getSubsidy/{subsidyid} [get]
func GetSubsidy(subsidies SubsidyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "subsidyid")
		if !ok {
			return
		}
		sub, err := subsidies.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Subsidy not found")
			return
		}
		c.JSON(http.StatusOK, sub)
	}
}

// CreateSubsidy godoc
// @Summary      Create a subsidy
// @Tags         Subsidies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      models.SubsidyRequest  true  "Subsidy"
// @Success      201   {object}  models.CreatedResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/subsidies/postSubsidy [post]
func CreateSubsidy(subsidies SubsidyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SubsidyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid subsidy details", err)
			return
		}
		id, err := subsidies.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, "Failed to create subsidy")
			return
		}
		c.JSON(http.StatusCreated, models.CreatedResponse{
			Message: "Subsidy created successfully",
			ID:      strconv.FormatInt(id, 10),
		})
	}
}

// UpdateSubsidy godoc
// @Summary      Replace a subsidy
// @Tags         Subsidies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        subsidyid  path      int                    true  "Subsidy ID"
// @Param        body       body      models.SubsidyRequest  true  "Subsidy"
// @Success      200        {object}  models.MessageResponse
// @Failure      404        {object}  models.ErrorResponse
// @Router       /api/subsidies/putSubsidy/{subsidyid} [put]
func UpdateSubsidy(subsidies SubsidyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "subsidyid")
		if !ok {
			return
		}
		var req models.SubsidyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid subsidy details", err)
			return
		}
		if err := subsidies.Update(c.Request.Context(), id, req); err != nil {
			respondError(c, err, "Failed to update subsidy")
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Subsidy updated successfully"})
	}
}

// DeleteSubsidy godoc
// @Summary      Delete a subsidy
// @Tags         Subsidies
// @Produce      json
// @Security     BearerAuth
// @Param        subsidyid  path      int  true  "Subsidy ID"
// @Success      200        {object}  models.MessageResponse
// @Failure      404        {object}  models.ErrorResponse
// @Router       /api/subsidies/deleteSubsidy/{subsidyid} [delete]
func DeleteSubsidy(subsidies SubsidyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "subsidyid")
		if !ok {
			return
		}
		if err := subsidies.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err, "Failed to delete subsidy")
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Subsidy deleted successfully"})
	}
}
