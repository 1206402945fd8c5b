package db

import (
	"context"
	"errors"

	"fintrack-server/src/models"
	"fintrack-server/src/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DebtStore struct {
	pool *pgxpool.Pool
}

func NewDebtStore(pool *pgxpool.Pool) *DebtStore {
	return &DebtStore{pool: pool}
}

func (s *DebtStore) Insert(ctx context.Context, debt *models.Debt) (*models.Debt, error) {
	query := `
		INSERT INTO debts (user_id, creditor_name, total_amount, amount_paid, interest_rate, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, creditor_name, total_amount, amount_paid, interest_rate, due_date, status, created_at, updated_at
	`
	var d models.Debt
	err := s.pool.QueryRow(ctx, query, debt.UserID, debt.CreditorName, debt.TotalAmount, debt.AmountPaid, debt.InterestRate, debt.DueDate, debt.Status).
		Scan(&d.ID, &d.UserID, &d.CreditorName, &d.TotalAmount, &d.AmountPaid, &d.InterestRate, &d.DueDate, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DebtStore) ListByUser(ctx context.Context, userID int64) ([]models.Debt, error) {
	query := `
		SELECT id, user_id, creditor_name, total_amount, amount_paid, interest_rate, due_date, status, created_at, updated_at
		FROM debts WHERE user_id = $1
		ORDER BY id
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var debts []models.Debt
	for rows.Next() {
		var d models.Debt
		err := rows.Scan(&d.ID, &d.UserID, &d.CreditorName, &d.TotalAmount, &d.AmountPaid, &d.InterestRate, &d.DueDate, &d.Status, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}
	return debts, rows.Err()
}

func (s *DebtStore) GetByID(ctx context.Context, userID, debtID int64) (*models.Debt, error) {
	query := `
		SELECT id, user_id, creditor_name, total_amount, amount_paid, interest_rate, due_date, status, created_at, updated_at
		FROM debts WHERE id = $1 AND user_id = $2
	`
	var d models.Debt
	err := s.pool.QueryRow(ctx, query, debtID, userID).
		Scan(&d.ID, &d.UserID, &d.CreditorName, &d.TotalAmount, &d.AmountPaid, &d.InterestRate, &d.DueDate, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (s *DebtStore) Update(ctx context.Context, debt *models.Debt) (*models.Debt, error) {
	query := `
		UPDATE debts
		SET creditor_name = $1, total_amount = $2, amount_paid = $3, interest_rate = $4, due_date = $5, status = $6, updated_at = NOW()
		WHERE id = $7 AND user_id = $8
		RETURNING id, user_id, creditor_name, total_amount, amount_paid, interest_rate, due_date, status, created_at, updated_at
	`
	var d models.Debt
	err := s.pool.QueryRow(ctx, query, debt.CreditorName, debt.TotalAmount, debt.AmountPaid, debt.InterestRate, debt.DueDate, debt.Status, debt.ID, debt.UserID).
		Scan(&d.ID, &d.UserID, &d.CreditorName, &d.TotalAmount, &d.AmountPaid, &d.InterestRate, &d.DueDate, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (s *DebtStore) Delete(ctx context.Context, userID, debtID int64) error {
	query := `DELETE FROM debts WHERE id = $1 AND user_id = $2`
	cmd, err := s.pool.Exec(ctx, query, debtID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}
