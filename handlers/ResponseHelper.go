package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"agriadmin/models"
	"agriadmin/services"
	"agriadmin/storage"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, storage.ErrAllocationExhausted):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// respondError writes {message, error} with the status matching err.
// Unexpected failures are logged as well.
func respondError(c *gin.Context, err error, message string) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.WithError(err).WithFields(log.Fields{
			"path":       c.FullPath(),
			"request_id": c.GetString("request_id"),
		}).Error(message)
	}
	c.JSON(status, models.ErrorResponse{Message: message, Error: err.Error()})
}

func badRequest(c *gin.Context, message string, err error) {
	resp := models.ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

// intParam reads a numeric path parameter, answering 400 when it is malformed.
func intParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "Invalid "+name, err)
		return 0, false
	}
	return id, true
}

func attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", "attachment;filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}
