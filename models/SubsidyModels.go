package models

import "time"

type Subsidy struct {
	ID          int64     `json:"id" example:"40218"`
	Title       string    `json:"title" example:"PM-KISAN"`
	Description *string   `json:"description" example:"Income support of Rs 6000 per year"`
	Link        *string   `json:"link" example:"https://pmkisan.gov.in"`
	StateID     *int64    `json:"state_id" example:"10029"`
	StateName   *string   `json:"state_name" example:"Karnataka"`
	CreatedAt   time.Time `json:"created_at"`
}

type SubsidyRequest struct {
	Title       string  `json:"title" binding:"required" example:"PM-KISAN"`
	Description *string `json:"description"`
	Link        *string `json:"link" binding:"omitempty,url"`
	StateID     *int64  `json:"state_id"`
}

type SubsidyFilter struct {
	StateID *int64 `form:"state_id"`
}
