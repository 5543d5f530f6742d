package models

import "time"

// User categories seeded by the schema.
const (
	CategoryFarmer int64 = 1
	CategoryExpert int64 = 2
	CategoryAdmin  int64 = 3
)

type User struct {
	UserID      int64     `json:"user_id" example:"482913"`
	PhoneNumber string    `json:"phone_number" example:"9876543210"`
	Email       *string   `json:"email" example:"farmer@example.com"`
	Name        string    `json:"name" example:"Ravi Kumar"`
	DOB         *string   `json:"dob" example:"1985-06-21"`
	Address     *string   `json:"address"`
	Pincode     *string   `json:"pincode" example:"560001"`
	CategoryID  int64     `json:"category_id" example:"1"`
	Category    string    `json:"category" example:"Farmer"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserFields are shared by create and update.
type UserFields struct {
	PhoneNumber string  `json:"phone_number" binding:"required,phone" example:"9876543210"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Name        string  `json:"name" binding:"required" example:"Ravi Kumar"`
	DOB         *string `json:"dob" binding:"omitempty,datetime=2006-01-02" example:"1985-06-21"`
	Address     *string `json:"address"`
	Pincode     *string `json:"pincode" binding:"omitempty,pincode" example:"560001"`
	CategoryID  int64   `json:"category_id" binding:"required" example:"1"`
}

type CreateUserRequest struct {
	UserFields
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
}

// UpdateUserRequest overwrites every field; the password is only replaced when sent.
type UpdateUserRequest struct {
	UserFields
	Password *string `json:"password" binding:"omitempty,min=6"`
}

type UserFilter struct {
	CategoryID *int64 `form:"category_id"`
}
