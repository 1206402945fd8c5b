package models

import "time"

const (
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

type RecurringExpense struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Frequency   string    `json:"frequency"`
	NextDate    time.Time `json:"nextDate"`
	IsActive    bool      `json:"isActive"`
	DueSoon     bool      `json:"dueSoon"` // derived at read time, never persisted
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateRecurringExpenseRequest struct {
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Frequency   string    `json:"frequency"`
	NextDate    time.Time `json:"nextDate"`
	IsActive    *bool     `json:"isActive"` // defaults to true when omitted
}

type UpdateRecurringExpenseRequest struct {
	Description *string    `json:"description"`
	Amount      *float64   `json:"amount"`
	Category    *string    `json:"category"`
	Frequency   *string    `json:"frequency"`
	NextDate    *time.Time `json:"nextDate"`
	IsActive    *bool      `json:"isActive"`
}
