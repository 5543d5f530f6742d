package handlers

import (
	"context"
	"net/http"
	"strconv"

	"agriadmin/models"
	"agriadmin/services"

	"github.com/gin-gonic/gin"
)

type UserStore interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, req models.CreateUserRequest) (int64, error)
	Update(ctx context.Context, id int64, req models.UpdateUserRequest) error
	Delete(ctx context.Context, id int64) error
}

// GetUsers godoc
// @Summary      List users
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        category_id  query     int  false  "Filter by category"
// @Success      200          {array}   models.User
// @Failure      401          {object}  models.ErrorResponse
// @Failure      403          {object}  models.ErrorResponse
// @Router       /api/users/getUser [get]
func GetUsers(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.UserFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			badRequest(c, "Invalid filter", err)
			return
		}
		list, err := users.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err, "Failed to fetch users")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetUser godoc
// @Summary      Get a user
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        userid  path      int  true  "User ID"
// @Success      200     {object}  models.User
// @Failure      404     {object}  models.ErrorResponse
// @Router       /api/users/getUser/{userid} [get]
func GetUser(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "userid")
		if !ok {
			return
		}
		user, err := users.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// CreateUser godoc
// @Summary      Create a user
// @Description  Allocates a six-digit user id and stores auth and profile rows together.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      models.CreateUserRequest  true  "User"
// @Success      201   {object}  models.CreatedResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      409   {object}  models.ErrorResponse
// @Router       /api/users/postUser [post]
func CreateUser(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid user details", err)
			return
		}
		id, err := users.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, "Failed to create user")
			return
		}
		c.JSON(http.StatusCreated, models.CreatedResponse{
			Message: "User created successfully",
			ID:      strconv.FormatInt(id, 10),
		})
	}
}

// UpdateUser godoc
// @Summary      Replace a user's details
// @Tags         Users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userid  path      int                       true  "User ID"
// @Param        body    body      models.UpdateUserRequest  true  "User"
// @Success      200     {object}  models.MessageResponse
// @Failure      400     {object}  models.ErrorResponse
// @Failure      404     {object}  models.ErrorResponse
// @Router       /api/users/putUser/{userid} [put]
func UpdateUser(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "userid")
		if !ok {
			return
		}
		var req models.UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid user details", err)
			return
		}
		if err := users.Update(c.Request.Context(), id, req); err != nil {
			respondError(c, err, "Failed to update user")
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "User updated successfully"})
	}
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        userid  path      int  true  "User ID"
// @Success      200     {object}  models.MessageResponse
// @Failure      404     {object}  models.ErrorResponse
// @Failure      409     {object}  models.ErrorResponse
// @Router       /api/users/deleteUser/{userid} [delete]
func DeleteUser(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "userid")
		if !ok {
			return
		}
		if err := users.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err, "Failed to delete user")
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "User deleted successfully"})
	}
}

// ExportUsers godoc
// @Summary      Download users as an Excel workbook
// @Tags         Users
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        category_id  query  int  false  "Filter by category"
// @Success      200          {file}  file
// @Router       /api/users/export [get]
func ExportUsers(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.UserFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			badRequest(c, "Invalid filter", err)
			return
		}
		list, err := users.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err, "Failed to fetch users")
			return
		}
		data, err := services.UsersWorkbook(list)
		if err != nil {
			respondError(c, err, "Failed to build workbook")
			return
		}
		attachment(c, "users.xlsx", services.XLSXContentType, data)
	}
}
