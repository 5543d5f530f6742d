package handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"agriadmin/models"
	"agriadmin/services"

	"github.com/gin-gonic/gin"
)

// maxImageSize bounds multipart uploads.
const maxImageSize = 10 << 20

type ImageStore interface {
	List(ctx context.Context, filter models.ImageFilter) ([]models.Image, error)
	Add(ctx context.Context, req models.ImageRequest) (*models.Image, error)
	Upload(ctx context.Context, cropID, filename, contentType string, size int64, body io.Reader) (*models.Image, error)
}

type AnalysisStore interface {
	List(ctx context.Context, filter models.AnalysisFilter) ([]models.AnalysisResult, error)
	Create(ctx context.Context, req models.AnalysisRequest) (int64, error)
}

// GetImages godoc
// @Summary      List crop images
// @Tags         Images
// @Produce      json
// @Security     BearerAuth
// @Param        crop_id  query     string  false  "Crop"
// @Success      200      {array}   models.Image
// @Router       /api/diseaseRemedies/images [get]
func GetImages(images ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.ImageFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			badRequest(c, "Invalid filter", err)
			return
		}
		list, err := images.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err, "Failed to fetch images")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// AddImage godoc
// @Summary      Record a crop image
// @Description  Send JSON {crop_id, image_url} for an already hosted image, or
// @Description  multipart form data with crop_id and an "image" file to upload it.
// @Tags         Images
// @Accept       json,mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        body     body      models.ImageRequest  false  "Hosted image"
// @Param        crop_id  formData  string               false  "Crop ID"
// @Param        image    formData  file                 false  "Image file"
// @Success      201      {object}  models.Image
// @Failure      400      {object}  models.ErrorResponse
// @Router       /api/diseaseRemedies/addimages [post]
func AddImage(images ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.ContentType(), "multipart/") {
			uploadImage(c, images)
			return
		}
		var req models.ImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid image details", err)
			return
		}
		img, err := images.Add(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, "Failed to add image")
			return
		}
		c.JSON(http.StatusCreated, img)
	}
}

func uploadImage(c *gin.Context, images ImageStore) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageSize)
	cropID := c.PostForm("crop_id")
	if cropID == "" {
		badRequest(c, "crop_id is required", nil)
		return
	}
	header, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "image file is required", err)
		return
	}
	file, err := header.Open()
	if err != nil {
		badRequest(c, "Unable to read image", err)
		return
	}
	defer file.Close()

	img, err := images.Upload(c.Request.Context(), cropID, header.Filename,
		header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		respondError(c, err, "Failed to upload image")
		return
	}
	c.JSON(http.StatusCreated, img)
}

// GetAnalysisResults godoc
// @Summary      List disease analysis results
// @Description  Filters are combined with AND; newest first.
// @Tags         Analysis
// @Produce      json
// @Security     BearerAuth
// @Param        user_id     query     int     false  "User"
// @Param        plant_id    query     int     false  "Plant"
// @Param        crop_id     query     string  false  "Crop"
// @Param        image_id    query     int     false  "Image"
// @Param        disease_id  query     int     false  "Disease"
// @Param        remedy_id   query     int     false  "Remedy"
// @Success      200         {array}   models.AnalysisResult
// @Router       /api/diseaseRemedies/disease-analysis-results [get]
func GetAnalysisResults(results AnalysisStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.AnalysisFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			badRequest(c, "Invalid filter", err)
			return
		}
		list, err := results.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err, "Failed to fetch analysis results")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// CreateAnalysisResult godoc
// @Summary      Record a disease diagnosis
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      models.AnalysisRequest  true  "Result"
// @Success      201   {object}  models.CreatedResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/diseaseRemedies/createdisease-analysis-results [post]
func CreateAnalysisResult(results AnalysisStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid analysis result", err)
			return
		}
		id, err := results.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, "Failed to record analysis result")
			return
		}
		c.JSON(http.StatusCreated, models.CreatedResponse{
			Message: "Analysis result recorded",
			ID:      strconv.FormatInt(id, 10),
		})
	}
}

// AnalysisReport godoc
// @Summary      Download analysis results as a PDF report
// @Tags         Analysis
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        user_id     query  int  false  "User"
// @Param        disease_id  query  int  false  "Disease"
// @Success      200         {file}  file
// @Router       /api/diseaseRemedies/disease-analysis-results/report [get]
func AnalysisReport(results AnalysisStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.AnalysisFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			badRequest(c, "Invalid filter", err)
			return
		}
		list, err := results.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err, "Failed to fetch analysis results")
			return
		}
		pdf, err := services.AnalysisReport(list, time.Now())
		if err != nil {
			respondError(c, err, "Failed to generate report")
			return
		}
		attachment(c, "disease_analysis_report.pdf", "application/pdf", pdf)
	}
}
