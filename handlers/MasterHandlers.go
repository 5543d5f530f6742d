package handlers

import (
	"context"
	"net/http"

	"agriadmin/models"

	"github.com/gin-gonic/gin"
)

// MasterCatalog is satisfied by *services.Catalog for each reference table.
type MasterCatalog[T any] interface {
	List(ctx context.Context) ([]T, error)
	Add(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, id int64) error
}

// ListMasters serves every row of one reference table, e.g.
// GET /api/farmcrop/masters/soiltypes.
func ListMasters[T any](cat MasterCatalog[T], label string) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := cat.List(c.Request.Context())
		if err != nil {
			respondError(c, err, "Failed to fetch "+label)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// AddMaster binds the row from JSON, lets the catalog normalise its name and
// assign an id, and echoes the stored row with 201.
func AddMaster[T any](cat MasterCatalog[T], label string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item T
		if err := c.ShouldBindJSON(&item); err != nil {
			badRequest(c, "Invalid "+label, err)
			return
		}
		stored, err := cat.Add(c.Request.Context(), item)
		if err != nil {
			respondError(c, err, "Failed to add "+label)
			return
		}
		c.JSON(http.StatusCreated, stored)
	}
}

func DeleteMaster[T any](cat MasterCatalog[T], label string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "id")
		if !ok {
			return
		}
		if err := cat.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err, "Failed to delete "+label)
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Deleted " + label + " " + c.Param("id")})
	}
}
