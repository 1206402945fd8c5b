package db

import (
	"context"
	"errors"

	"fintrack-server/src/models"
	"fintrack-server/src/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExpenseStore struct {
	pool *pgxpool.Pool
}

func NewExpenseStore(pool *pgxpool.Pool) *ExpenseStore {
	return &ExpenseStore{pool: pool}
}

func (s *ExpenseStore) Insert(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	query := `
		INSERT INTO expenses (user_id, description, amount, category, date, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, description, amount, category, date, payment_method, created_at, updated_at
	`
	var e models.Expense
	err := s.pool.QueryRow(ctx, query, expense.UserID, expense.Description, expense.Amount, expense.Category, expense.Date, expense.PaymentMethod).
		Scan(&e.ID, &e.UserID, &e.Description, &e.Amount, &e.Category, &e.Date, &e.PaymentMethod, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *ExpenseStore) ListByUser(ctx context.Context, userID int64) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, description, amount, category, date, payment_method, created_at, updated_at
		FROM expenses WHERE user_id = $1
		ORDER BY date DESC
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Amount, &e.Category, &e.Date, &e.PaymentMethod, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *ExpenseStore) GetByID(ctx context.Context, userID, expenseID int64) (*models.Expense, error) {
	query := `
		SELECT id, user_id, description, amount, category, date, payment_method, created_at, updated_at
		FROM expenses WHERE id = $1 AND user_id = $2
	`
	var e models.Expense
	err := s.pool.QueryRow(ctx, query, expenseID, userID).
		Scan(&e.ID, &e.UserID, &e.Description, &e.Amount, &e.Category, &e.Date, &e.PaymentMethod, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *ExpenseStore) Update(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	query := `
		UPDATE expenses
		SET description = $1, amount = $2, category = $3, date = $4, payment_method = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
		RETURNING id, user_id, description, amount, category, date, payment_method, created_at, updated_at
	`
	var e models.Expense
	err := s.pool.QueryRow(ctx, query, expense.Description, expense.Amount, expense.Category, expense.Date, expense.PaymentMethod, expense.ID, expense.UserID).
		Scan(&e.ID, &e.UserID, &e.Description, &e.Amount, &e.Category, &e.Date, &e.PaymentMethod, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *ExpenseStore) Delete(ctx context.Context, userID, expenseID int64) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	cmd, err := s.pool.Exec(ctx, query, expenseID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (s *ExpenseStore) SumByCategory(ctx context.Context, userID int64, category string) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = $1 AND category = $2`
	var sum float64
	err := s.pool.QueryRow(ctx, query, userID, category).Scan(&sum)
	if err != nil {
		return 0, err
	}
	return sum, nil
}
