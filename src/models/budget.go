package models

import "time"

type Budget struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Category  string    `json:"category"`
	Limit     float64   `json:"limit"`
	Month     string    `json:"month"`
	Spent     float64   `json:"spent"` // derived at read time, never persisted
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateBudgetRequest struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
	Month    string  `json:"month"`
}

type UpdateBudgetRequest struct {
	Category *string  `json:"category"`
	Limit    *float64 `json:"limit"`
	Month    *string  `json:"month"`
}
