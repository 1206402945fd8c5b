package service

import (
	"context"

	"fintrack-server/src/models"
)

type BudgetStore interface {
	Insert(ctx context.Context, budget *models.Budget) (*models.Budget, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Budget, error)
	GetByID(ctx context.Context, userID, budgetID int64) (*models.Budget, error)
	Update(ctx context.Context, budget *models.Budget) (*models.Budget, error)
	Delete(ctx context.Context, userID, budgetID int64) error
}

// ExpenseSummer is the slice of the expense store the budget service needs
// to compute spent-so-far per category.
type ExpenseSummer interface {
	SumByCategory(ctx context.Context, userID int64, category string) (float64, error)
}

type BudgetService struct {
	store    BudgetStore
	expenses ExpenseSummer
}

func NewBudgetService(store BudgetStore, expenses ExpenseSummer) *BudgetService {
	return &BudgetService{store: store, expenses: expenses}
}

func (s *BudgetService) Create(ctx context.Context, userID int64, req models.CreateBudgetRequest) (*models.Budget, error) {
	if req.Category == "" || req.Month == "" {
		return nil, validationErrorf("category, limit and month are required")
	}
	if req.Limit <= 0 {
		return nil, validationErrorf("limit must be a positive number")
	}
	budget := &models.Budget{
		UserID:   userID,
		Category: req.Category,
		Limit:    req.Limit,
		Month:    req.Month,
	}
	return s.store.Insert(ctx, budget)
}

// List computes spent per budget as the lifetime sum of the user's expenses
// in the same category. The budget's month does not constrain the
// aggregation.
func (s *BudgetService) List(ctx context.Context, userID int64) ([]models.Budget, error) {
	budgets, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range budgets {
		spent, err := s.expenses.SumByCategory(ctx, userID, budgets[i].Category)
		if err != nil {
			return nil, err
		}
		budgets[i].Spent = spent
	}
	return budgets, nil
}

func (s *BudgetService) GetByID(ctx context.Context, userID, budgetID int64) (*models.Budget, error) {
	budget, err := s.store.GetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}
	spent, err := s.expenses.SumByCategory(ctx, userID, budget.Category)
	if err != nil {
		return nil, err
	}
	budget.Spent = spent
	return budget, nil
}

func (s *BudgetService) Update(ctx context.Context, userID, budgetID int64, req models.UpdateBudgetRequest) (*models.Budget, error) {
	budget, err := s.store.GetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}
	if req.Category != nil {
		budget.Category = *req.Category
	}
	if req.Limit != nil {
		if *req.Limit <= 0 {
			return nil, validationErrorf("limit must be a positive number")
		}
		budget.Limit = *req.Limit
	}
	if req.Month != nil {
		budget.Month = *req.Month
	}
	return s.store.Update(ctx, budget)
}

func (s *BudgetService) Delete(ctx context.Context, userID, budgetID int64) error {
	return s.store.Delete(ctx, userID, budgetID)
}
