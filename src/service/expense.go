package service

import (
	"context"

	"fintrack-server/src/models"
)

type ExpenseStore interface {
	Insert(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Expense, error)
	GetByID(ctx context.Context, userID, expenseID int64) (*models.Expense, error)
	Update(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	Delete(ctx context.Context, userID, expenseID int64) error
	SumByCategory(ctx context.Context, userID int64, category string) (float64, error)
}

type ExpenseService struct {
	store ExpenseStore
}

func NewExpenseService(store ExpenseStore) *ExpenseService {
	return &ExpenseService{store: store}
}

func (s *ExpenseService) Create(ctx context.Context, userID int64, req models.CreateExpenseRequest) (*models.Expense, error) {
	if req.Description == "" || req.Category == "" || req.Date.IsZero() {
		return nil, validationErrorf("description, amount, category and date are required")
	}
	if req.Amount <= 0 {
		return nil, validationErrorf("amount must be a positive number")
	}
	expense := &models.Expense{
		UserID:        userID,
		Description:   req.Description,
		Amount:        req.Amount,
		Category:      req.Category,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
	}
	return s.store.Insert(ctx, expense)
}

// List returns the user's expenses ordered by date descending.
func (s *ExpenseService) List(ctx context.Context, userID int64) ([]models.Expense, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *ExpenseService) GetByID(ctx context.Context, userID, expenseID int64) (*models.Expense, error) {
	return s.store.GetByID(ctx, userID, expenseID)
}

func (s *ExpenseService) Update(ctx context.Context, userID, expenseID int64, req models.UpdateExpenseRequest) (*models.Expense, error) {
	expense, err := s.store.GetByID(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, validationErrorf("amount must be a positive number")
		}
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.PaymentMethod != nil {
		expense.PaymentMethod = *req.PaymentMethod
	}
	return s.store.Update(ctx, expense)
}

func (s *ExpenseService) Delete(ctx context.Context, userID, expenseID int64) error {
	return s.store.Delete(ctx, userID, expenseID)
}
