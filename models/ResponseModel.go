package models

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Message string `json:"message" example:"Farm not found"`
	Error   string `json:"error,omitempty" example:"not found: farm 000123"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Farm deleted successfully"`
}

// CreatedResponse reports the identifier assigned to a new row.
type CreatedResponse struct {
	Message string `json:"message" example:"Farm added successfully"`
	ID      string `json:"id" example:"000123"`
}
