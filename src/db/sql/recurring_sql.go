package db

import (
	"context"
	"errors"

	"fintrack-server/src/models"
	"fintrack-server/src/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RecurringExpenseStore struct {
	pool *pgxpool.Pool
}

func NewRecurringExpenseStore(pool *pgxpool.Pool) *RecurringExpenseStore {
	return &RecurringExpenseStore{pool: pool}
}

func (s *RecurringExpenseStore) Insert(ctx context.Context, recurring *models.RecurringExpense) (*models.RecurringExpense, error) {
	query := `
		INSERT INTO recurring_expenses (user_id, description, amount, category, frequency, next_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, description, amount, category, frequency, next_date, is_active, created_at, updated_at
	`
	var re models.RecurringExpense
	err := s.pool.QueryRow(ctx, query, recurring.UserID, recurring.Description, recurring.Amount, recurring.Category, recurring.Frequency, recurring.NextDate, recurring.IsActive).
		Scan(&re.ID, &re.UserID, &re.Description, &re.Amount, &re.Category, &re.Frequency, &re.NextDate, &re.IsActive, &re.CreatedAt, &re.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &re, nil
}

func (s *RecurringExpenseStore) ListByUser(ctx context.Context, userID int64) ([]models.RecurringExpense, error) {
	query := `
		SELECT id, user_id, description, amount, category, frequency, next_date, is_active, created_at, updated_at
		FROM recurring_expenses WHERE user_id = $1
		ORDER BY id
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recurring []models.RecurringExpense
	for rows.Next() {
		var re models.RecurringExpense
		err := rows.Scan(&re.ID, &re.UserID, &re.Description, &re.Amount, &re.Category, &re.Frequency, &re.NextDate, &re.IsActive, &re.CreatedAt, &re.UpdatedAt)
		if err != nil {
			return nil, err
		}
		recurring = append(recurring, re)
	}
	return recurring, rows.Err()
}

func (s *RecurringExpenseStore) GetByID(ctx context.Context, userID, recurringID int64) (*models.RecurringExpense, error) {
	query := `
		SELECT id, user_id, description, amount, category, frequency, next_date, is_active, created_at, updated_at
		FROM recurring_expenses WHERE id = $1 AND user_id = $2
	`
	var re models.RecurringExpense
	err := s.pool.QueryRow(ctx, query, recurringID, userID).
		Scan(&re.ID, &re.UserID, &re.Description, &re.Amount, &re.Category, &re.Frequency, &re.NextDate, &re.IsActive, &re.CreatedAt, &re.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &re, nil
}

func (s *RecurringExpenseStore) Update(ctx context.Context, recurring *models.RecurringExpense) (*models.RecurringExpense, error) {
	query := `
		UPDATE recurring_expenses
		SET description = $1, amount = $2, category = $3, frequency = $4, next_date = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7 AND user_id = $8
		RETURNING id, user_id, description, amount, category, frequency, next_date, is_active, created_at, updated_at
	`
	var re models.RecurringExpense
	err := s.pool.QueryRow(ctx, query, recurring.Description, recurring.Amount, recurring.Category, recurring.Frequency, recurring.NextDate, recurring.IsActive, recurring.ID, recurring.UserID).
		Scan(&re.ID, &re.UserID, &re.Description, &re.Amount, &re.Category, &re.Frequency, &re.NextDate, &re.IsActive, &re.CreatedAt, &re.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &re, nil
}

func (s *RecurringExpenseStore) Delete(ctx context.Context, userID, recurringID int64) error {
	query := `DELETE FROM recurring_expenses WHERE id = $1 AND user_id = $2`
	cmd, err := s.pool.Exec(ctx, query, recurringID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}
