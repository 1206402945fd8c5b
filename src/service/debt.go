package service

import (
	"context"

	"fintrack-server/src/models"
)

type DebtStore interface {
	Insert(ctx context.Context, debt *models.Debt) (*models.Debt, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Debt, error)
	GetByID(ctx context.Context, userID, debtID int64) (*models.Debt, error)
	Update(ctx context.Context, debt *models.Debt) (*models.Debt, error)
	Delete(ctx context.Context, userID, debtID int64) error
}

type DebtService struct {
	store DebtStore
}

func NewDebtService(store DebtStore) *DebtService {
	return &DebtService{store: store}
}

func remaining(d *models.Debt) float64 {
	r := d.TotalAmount - d.AmountPaid
	if r < 0 {
		return 0
	}
	return r
}

func (s *DebtService) Create(ctx context.Context, userID int64, req models.CreateDebtRequest) (*models.Debt, error) {
	if req.CreditorName == "" || req.DueDate.IsZero() {
		return nil, validationErrorf("creditorName, totalAmount and dueDate are required")
	}
	if req.TotalAmount <= 0 {
		return nil, validationErrorf("totalAmount must be a positive number")
	}
	if req.AmountPaid < 0 {
		return nil, validationErrorf("amountPaid cannot be negative")
	}
	debt := &models.Debt{
		UserID:       userID,
		CreditorName: req.CreditorName,
		TotalAmount:  req.TotalAmount,
		AmountPaid:   req.AmountPaid,
		InterestRate: req.InterestRate,
		DueDate:      req.DueDate,
		Status:       models.DebtStatusActive,
	}
	created, err := s.store.Insert(ctx, debt)
	if err != nil {
		return nil, err
	}
	created.Remaining = remaining(created)
	return created, nil
}

func (s *DebtService) List(ctx context.Context, userID int64) ([]models.Debt, error) {
	debts, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range debts {
		debts[i].Remaining = remaining(&debts[i])
	}
	return debts, nil
}

func (s *DebtService) GetByID(ctx context.Context, userID, debtID int64) (*models.Debt, error) {
	debt, err := s.store.GetByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}
	debt.Remaining = remaining(debt)
	return debt, nil
}

func (s *DebtService) Update(ctx context.Context, userID, debtID int64, req models.UpdateDebtRequest) (*models.Debt, error) {
	debt, err := s.store.GetByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}
	if req.CreditorName != nil {
		debt.CreditorName = *req.CreditorName
	}
	if req.TotalAmount != nil {
		if *req.TotalAmount <= 0 {
			return nil, validationErrorf("totalAmount must be a positive number")
		}
		debt.TotalAmount = *req.TotalAmount
	}
	if req.AmountPaid != nil {
		if *req.AmountPaid < 0 {
			return nil, validationErrorf("amountPaid cannot be negative")
		}
		debt.AmountPaid = *req.AmountPaid
	}
	if req.InterestRate != nil {
		debt.InterestRate = *req.InterestRate
	}
	if req.DueDate != nil {
		debt.DueDate = *req.DueDate
	}
	if req.Status != nil {
		if *req.Status != models.DebtStatusActive && *req.Status != models.DebtStatusPaidOff {
			return nil, validationErrorf("status must be %q or %q", models.DebtStatusActive, models.DebtStatusPaidOff)
		}
		debt.Status = *req.Status
	}
	updated, err := s.store.Update(ctx, debt)
	if err != nil {
		return nil, err
	}
	updated.Remaining = remaining(updated)
	return updated, nil
}

// RecordPayment applies a payment against the debt's remaining balance.
// A payment that would push the balance below zero is rejected; a payment
// that lands exactly on zero flips the debt to paid-off.
func (s *DebtService) RecordPayment(ctx context.Context, userID, debtID int64, payment float64) (*models.Debt, error) {
	if payment <= 0 {
		return nil, validationErrorf("payment amount must be a positive number")
	}
	debt, err := s.store.GetByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}
	newRemaining := remaining(debt) - payment
	if newRemaining < 0 {
		return nil, validationErrorf("payment amount exceeds remaining debt")
	}
	debt.AmountPaid += payment
	if newRemaining == 0 {
		debt.Status = models.DebtStatusPaidOff
	} else {
		debt.Status = models.DebtStatusActive
	}
	updated, err := s.store.Update(ctx, debt)
	if err != nil {
		return nil, err
	}
	updated.Remaining = remaining(updated)
	return updated, nil
}

func (s *DebtService) Delete(ctx context.Context, userID, debtID int64) error {
	return s.store.Delete(ctx, userID, debtID)
}
