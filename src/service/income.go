package service

import (
	"context"

	"fintrack-server/src/models"
)

type IncomeStore interface {
	Insert(ctx context.Context, income *models.Income) (*models.Income, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Income, error)
	GetByID(ctx context.Context, userID, incomeID int64) (*models.Income, error)
	Delete(ctx context.Context, userID, incomeID int64) error
}

// IncomeService has no update operation: income records are created and
// deleted, never edited.
type IncomeService struct {
	store IncomeStore
}

func NewIncomeService(store IncomeStore) *IncomeService {
	return &IncomeService{store: store}
}

func (s *IncomeService) Create(ctx context.Context, userID int64, req models.CreateIncomeRequest) (*models.Income, error) {
	if req.Source == "" || req.Date.IsZero() {
		return nil, validationErrorf("source, amount and date are required")
	}
	if req.Amount <= 0 {
		return nil, validationErrorf("amount must be a positive number")
	}
	income := &models.Income{
		UserID:      userID,
		Source:      req.Source,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	}
	return s.store.Insert(ctx, income)
}

// List returns the user's income records ordered by date descending.
func (s *IncomeService) List(ctx context.Context, userID int64) ([]models.Income, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *IncomeService) GetByID(ctx context.Context, userID, incomeID int64) (*models.Income, error) {
	return s.store.GetByID(ctx, userID, incomeID)
}

func (s *IncomeService) Delete(ctx context.Context, userID, incomeID int64) error {
	return s.store.Delete(ctx, userID, incomeID)
}
