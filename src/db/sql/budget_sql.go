package db

import (
	"context"
	"errors"

	"fintrack-server/src/models"
	"fintrack-server/src/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// limit is a reserved word in SQL, hence the limit_amount column.

type BudgetStore struct {
	pool *pgxpool.Pool
}

func NewBudgetStore(pool *pgxpool.Pool) *BudgetStore {
	return &BudgetStore{pool: pool}
}

func (s *BudgetStore) Insert(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	query := `
		INSERT INTO budgets (user_id, category, limit_amount, month)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, category, limit_amount, month, created_at, updated_at
	`
	var b models.Budget
	err := s.pool.QueryRow(ctx, query, budget.UserID, budget.Category, budget.Limit, budget.Month).
		Scan(&b.ID, &b.UserID, &b.Category, &b.Limit, &b.Month, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BudgetStore) ListByUser(ctx context.Context, userID int64) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, category, limit_amount, month, created_at, updated_at
		FROM budgets WHERE user_id = $1
		ORDER BY id
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Limit, &b.Month, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func (s *BudgetStore) GetByID(ctx context.Context, userID, budgetID int64) (*models.Budget, error) {
	query := `
		SELECT id, user_id, category, limit_amount, month, created_at, updated_at
		FROM budgets WHERE id = $1 AND user_id = $2
	`
	var b models.Budget
	err := s.pool.QueryRow(ctx, query, budgetID, userID).
		Scan(&b.ID, &b.UserID, &b.Category, &b.Limit, &b.Month, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (s *BudgetStore) Update(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	query := `
		UPDATE budgets
		SET category = $1, limit_amount = $2, month = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
		RETURNING id, user_id, category, limit_amount, month, created_at, updated_at
	`
	var b models.Budget
	err := s.pool.QueryRow(ctx, query, budget.Category, budget.Limit, budget.Month, budget.ID, budget.UserID).
		Scan(&b.ID, &b.UserID, &b.Category, &b.Limit, &b.Month, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (s *BudgetStore) Delete(ctx context.Context, userID, budgetID int64) error {
	query := `DELETE FROM budgets WHERE id = $1 AND user_id = $2`
	cmd, err := s.pool.Exec(ctx, query, budgetID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}
