package handlers

import (
	"context"
	"net/http"
	"strconv"

	"agriadmin/models"

	"github.com/gin-gonic/gin"
)

type DiseaseStore interface {
	List(ctx context.Context, filter models.DiseaseFilter) ([]models.Disease, error)
	Get(ctx context.Context, id int64) (*models.Disease, error)
	Create(ctx context.Context, req models.DiseaseRequest) (*models.Disease, error)
	Update(ctx context.Context, id int64, req models.DiseaseRequest) (*models.Disease, error)
	Delete(ctx context.Context, id int64) error
}

type RemedyStore interface {
	List(ctx context.Context) ([]models.Remedy, error)
	Get(ctx context.Context, id int64) (*models.Remedy, error)
	Create(ctx context.Context, req models.RemedyRequest) (int64, error)
	Update(ctx context.Context, id int64, req models.RemedyRequest) error
	Delete(ctx context.Context, id int64) error
	Map(ctx context.Context, req models.MappingRequest) error
	Unmap(ctx context.Context, req models.MappingRequest) error
	RemediesFor(ctx context.Context, diseaseID int64) ([]models.Remedy, error)
}

// GetDiseases godoc
// @Summary      List diseases
// @Tags         Diseases
// @Produce      json
// @Security     BearerAuth
// @Param        plant_id  query     int  false  "Plant"
// @Success      200       {array}   models.Disease
// @Router       /api/diseaseRemedies/diseases [get]
func GetDiseases(diseases DiseaseStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.DiseaseFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			badRequest(c, "Invalid filter", err)
			return
		}
		list, err := diseases.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err, "Failed to fetch diseases")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetDisease godoc
// @Summary      Get a disease
// @Tags         Diseases
// @Produce      json
// @Security     BearerAuth
// @Param        diseaseid  path      int  true  "Disease ID"
// @Success      200        {object}  models.Disease
// @Failure      404        {object}  models.ErrorResponse
// @Router       /api/diseaseRemedies/diseases/{diseaseid} [get]
func GetDisease(diseases DiseaseStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "diseaseid")
		if !ok {
			return
		}
		d, err := diseases.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Disease not found")
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// CreateDisease godoc
// @Summary      Create a disease
// @Tags         Diseases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      models.DiseaseRequest  true  "Disease"
// @Success      201   {object}  models.Disease
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/diseaseRemedies/creatediseases [post]
func CreateDisease(diseases DiseaseStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.DiseaseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid disease details", err)
			return
		}
		d, err := diseases.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, "Failed to create disease")
			return
		}
		c.JSON(http.StatusCreated, d)
	}
}

// UpdateDisease godoc
// @Summary      Replace a disease
// @Tags         Diseases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        diseaseid  path      int                    true  "Disease ID"
// @Param        body       body      models.DiseaseRequest  true  "Disease"
// @Success      200        {object}  models.Disease
// @Failure      404        {object}  models.ErrorResponse
// @Router       /api/diseaseRemedies/updatediseases/{diseaseid} [put]
func UpdateDisease(diseases DiseaseStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "diseaseid")
		if !ok {
			return
		}
		var req models.DiseaseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid disease details", err)
			return
		}
		d, err := diseases.Update(c.Request.Context(), id, req)
		if err != nil {
			respondError(c, err, "Failed to update disease")
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// DeleteDisease godoc
// @Summary      Delete a disease
// @Tags         Diseases
// @Produce      json
// @Security     BearerAuth
// @Param        diseaseid  path      int  true  "Disease ID"
// @Success      200        {object}  models.MessageResponse
// @Failure      404        {object}  models.ErrorResponse
// @Failure      409        {object}  models.ErrorResponse
// @Router       /api/diseaseRemedies/deletediseases/{diseaseid} [delete]
func DeleteDisease(diseases DiseaseStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "diseaseid")
		if !ok {
			return
		}
		if err := diseases.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err, "Failed to delete disease")
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Disease deleted successfully"})
	}
}

// GetRemedies godoc
// @Summary      List remedies with the diseases each one treats
// @Tags         Remedies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Remedy
// @Router       /api/diseaseRemedies/remedies [get]
func GetRemedies(remedies RemedyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := remedies.List(c.Request.Context())
		if err != nil {
			respondError(c, err, "Failed to fetch remedies")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetRemedy godoc
// @Summary      Get a remedy
// @Tags         Remedies
// @Produce      json
// @Security     BearerAuth
// @Param        remedyid  path      int  true  "Remedy ID"
// @Success      200       {object}  models.Remedy
// @Failure      404       {object}  models.ErrorResponse
// @Router       /api/diseaseRemedies/remedies/{remedyid} [get]
func GetRemedy(remedies RemedyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "remedyid")
		if !ok {
			return
		}
		r, err := remedies.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Remedy not found")
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

// CreateRemedy godoc
// @Summary      Create a remedy
// @Tags         Remedies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      models.RemedyRequest  true  "Remedy"
// @Success      201   {object}  models.CreatedResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/diseaseRemedies/createremedies [post]
func CreateRemedy(remedies RemedyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RemedyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid remedy details", err)
			return
		}
		id, err := remedies.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, "Failed to create remedy")
			return
		}
		c.JSON(http.StatusCreated, models.CreatedResponse{
			Message: "Remedy created successfully",
			ID:      strconv.FormatInt(id, 10),
		})
	}
}

// UpdateRemedy godoc
// @Summary      Replace a remedy
// @Tags         Remedies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        remedyid  path      int                   true  "Remedy ID"
// @Param        body      body      models.RemedyRequest  true  "Remedy"
// @Success      200       {object}  models.MessageResponse
// @Failure      404       {object}  models.ErrorResponse
// @Router       /api/diseaseRemedies/updateremedies/{remedyid} [put]
func UpdateRemedy(remedies RemedyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "remedyid")
		if !ok {
			return
		}
		var req models.RemedyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid remedy details", err)
			return
		}
		if err := remedies.Update(c.Request.Context(), id, req); err != nil {
			respondError(c, err, "Failed to update remedy")
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Remedy updated successfully"})
	}
}

// DeleteRemedy godoc
// @Summary      Delete a remedy
// @Description  Fails with 409 while the remedy is mapped to a disease.
// @Tags         Remedies
// @Produce      json
// @Security     BearerAuth
// @Param        remedyid  path      int  true  "Remedy ID"
// @Success      200       {object}  models.MessageResponse
// @Failure      404       {object}  models.ErrorResponse
// @Failure      409       {object}  models.ErrorResponse
// @Router       /api/diseaseRemedies/deleteremedies/{remedyid} [delete]
func DeleteRemedy(remedies RemedyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "remedyid")
		if !ok {
			return
		}
		if err := remedies.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err, "Failed to delete remedy")
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Remedy deleted successfully"})
	}
}

// MapRemedy godoc
// @Summary      Link a remedy to a disease
// @Tags         Remedies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      models.MappingRequest  true  "Mapping"
// @Success      201   {object}  models.MessageResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      409   {object}  models.ErrorResponse
// @Router       /api/diseaseRemedies/remedies/map [post]
func MapRemedy(remedies RemedyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.MappingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "disease_id and remedy_id are required", err)
			return
		}
		if err := remedies.Map(c.Request.Context(), req); err != nil {
			respondError(c, err, "Failed to map remedy")
			return
		}
		c.JSON(http.StatusCreated, models.MessageResponse{Message: "Remedy mapped to disease"})
	}
}

// UnmapRemedy godoc
// @Summary      Remove a remedy from a disease
// @Tags         Remedies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      models.MappingRequest  true  "Mapping"
// @Success      200   {object}  models.MessageResponse
// @Failure      404   {object}  models.ErrorResponse
// @Router       /api/diseaseRemedies/remedies/unmap [delete]
func UnmapRemedy(remedies RemedyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.MappingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "disease_id and remedy_id are required", err)
			return
		}
		if err := remedies.Unmap(c.Request.Context(), req); err != nil {
			respondError(c, err, "Failed to unmap remedy")
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Remedy unmapped from disease"})
	}
}

// GetDiseaseRemedies godoc
// @Summary      Remedies mapped to a disease
// @Tags         Remedies
// @Produce      json
// @Security     BearerAuth
// @Param        diseaseid  path      int  true  "Disease ID"
// @Success      200        {array}   models.Remedy
// @Failure      404        {object}  models.ErrorResponse
// @Router       /api/diseaseRemedies/diseases/{diseaseid}/remedies [get]
func GetDiseaseRemedies(remedies RemedyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "diseaseid")
		if !ok {
			return
		}
		list, err := remedies.RemediesFor(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Failed to fetch remedies")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
