package models

import "time"

type Income struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Source      string    `json:"source"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateIncomeRequest struct {
	Source      string    `json:"source"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}
