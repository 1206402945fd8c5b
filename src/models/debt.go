package models

import "time"

const (
	DebtStatusActive  = "active"
	DebtStatusPaidOff = "paid-off"
)

type Debt struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	CreditorName string    `json:"creditorName"`
	TotalAmount  float64   `json:"totalAmount"`
	AmountPaid   float64   `json:"amountPaid"`
	InterestRate float64   `json:"interestRate"`
	DueDate      time.Time `json:"dueDate"`
	Status       string    `json:"status"`
	Remaining    float64   `json:"remaining"` // derived at read time, never persisted
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CreateDebtRequest struct {
	CreditorName string    `json:"creditorName"`
	TotalAmount  float64   `json:"totalAmount"`
	AmountPaid   float64   `json:"amountPaid"`
	InterestRate float64   `json:"interestRate"`
	DueDate      time.Time `json:"dueDate"`
}

type UpdateDebtRequest struct {
	CreditorName *string    `json:"creditorName"`
	TotalAmount  *float64   `json:"totalAmount"`
	AmountPaid   *float64   `json:"amountPaid"`
	InterestRate *float64   `json:"interestRate"`
	DueDate      *time.Time `json:"dueDate"`
	Status       *string    `json:"status"`
}

type DebtPaymentRequest struct {
	Amount float64 `json:"amount"`
}
