package models

import "time"

type Expense struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Category      string    `json:"category"`
	Date          time.Time `json:"date"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateExpenseRequest struct {
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Category      string    `json:"category"`
	Date          time.Time `json:"date"`
	PaymentMethod string    `json:"paymentMethod"`
}

// UpdateExpenseRequest uses pointer fields so that a supplied zero value is
// distinguishable from an omitted field.
type UpdateExpenseRequest struct {
	Description   *string    `json:"description"`
	Amount        *float64   `json:"amount"`
	Category      *string    `json:"category"`
	Date          *time.Time `json:"date"`
	PaymentMethod *string    `json:"paymentMethod"`
}
