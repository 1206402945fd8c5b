package service

import (
	"context"
	"time"

	"fintrack-server/src/models"
)

// dueSoonWindow is how far ahead a recurring expense's next date may be
// for the record to be flagged as due soon.
const dueSoonWindow = 3 * 24 * time.Hour

type RecurringExpenseStore interface {
	Insert(ctx context.Context, recurring *models.RecurringExpense) (*models.RecurringExpense, error)
	ListByUser(ctx context.Context, userID int64) ([]models.RecurringExpense, error)
	GetByID(ctx context.Context, userID, recurringID int64) (*models.RecurringExpense, error)
	Update(ctx context.Context, recurring *models.RecurringExpense) (*models.RecurringExpense, error)
	Delete(ctx context.Context, userID, recurringID int64) error
}

type RecurringExpenseService struct {
	store RecurringExpenseStore
}

func NewRecurringExpenseService(store RecurringExpenseStore) *RecurringExpenseService {
	return &RecurringExpenseService{store: store}
}

func validFrequency(frequency string) bool {
	switch frequency {
	case models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyYearly:
		return true
	}
	return false
}

// IsDueSoon reports whether nextDate falls within [0, 3] days of now.
// Past dates are not due soon.
func IsDueSoon(nextDate, now time.Time) bool {
	diff := nextDate.Sub(now)
	return diff >= 0 && diff <= dueSoonWindow
}

func (s *RecurringExpenseService) Create(ctx context.Context, userID int64, req models.CreateRecurringExpenseRequest) (*models.RecurringExpense, error) {
	if req.Description == "" || req.Category == "" || req.Frequency == "" || req.NextDate.IsZero() {
		return nil, validationErrorf("description, amount, category, frequency and nextDate are required")
	}
	if req.Amount <= 0 {
		return nil, validationErrorf("amount must be a positive number")
	}
	if !validFrequency(req.Frequency) {
		return nil, validationErrorf("frequency must be %q, %q or %q", models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyYearly)
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	recurring := &models.RecurringExpense{
		UserID:      userID,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Frequency:   req.Frequency,
		NextDate:    req.NextDate,
		IsActive:    isActive,
	}
	created, err := s.store.Insert(ctx, recurring)
	if err != nil {
		return nil, err
	}
	created.DueSoon = IsDueSoon(created.NextDate, time.Now())
	return created, nil
}

func (s *RecurringExpenseService) List(ctx context.Context, userID int64) ([]models.RecurringExpense, error) {
	recurring, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range recurring {
		recurring[i].DueSoon = IsDueSoon(recurring[i].NextDate, now)
	}
	return recurring, nil
}

func (s *RecurringExpenseService) GetByID(ctx context.Context, userID, recurringID int64) (*models.RecurringExpense, error) {
	recurring, err := s.store.GetByID(ctx, userID, recurringID)
	if err != nil {
		return nil, err
	}
	recurring.DueSoon = IsDueSoon(recurring.NextDate, time.Now())
	return recurring, nil
}

func (s *RecurringExpenseService) Update(ctx context.Context, userID, recurringID int64, req models.UpdateRecurringExpenseRequest) (*models.RecurringExpense, error) {
	recurring, err := s.store.GetByID(ctx, userID, recurringID)
	if err != nil {
		return nil, err
	}
	if req.Description != nil {
		recurring.Description = *req.Description
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, validationErrorf("amount must be a positive number")
		}
		recurring.Amount = *req.Amount
	}
	if req.Category != nil {
		recurring.Category = *req.Category
	}
	if req.Frequency != nil {
		if !validFrequency(*req.Frequency) {
			return nil, validationErrorf("frequency must be %q, %q or %q", models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyYearly)
		}
		recurring.Frequency = *req.Frequency
	}
	if req.NextDate != nil {
		recurring.NextDate = *req.NextDate
	}
	if req.IsActive != nil {
		recurring.IsActive = *req.IsActive
	}
	updated, err := s.store.Update(ctx, recurring)
	if err != nil {
		return nil, err
	}
	updated.DueSoon = IsDueSoon(updated.NextDate, time.Now())
	return updated, nil
}

func (s *RecurringExpenseService) Delete(ctx context.Context, userID, recurringID int64) error {
	return s.store.Delete(ctx, userID, recurringID)
}
