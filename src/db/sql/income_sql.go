package db

import (
	"context"
	"errors"

	"fintrack-server/src/models"
	"fintrack-server/src/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IncomeStore struct {
	pool *pgxpool.Pool
}

func NewIncomeStore(pool *pgxpool.Pool) *IncomeStore {
	return &IncomeStore{pool: pool}
}

func (s *IncomeStore) Insert(ctx context.Context, income *models.Income) (*models.Income, error) {
	query := `
		INSERT INTO incomes (user_id, source, amount, date, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, source, amount, date, description, created_at, updated_at
	`
	var i models.Income
	err := s.pool.QueryRow(ctx, query, income.UserID, income.Source, income.Amount, income.Date, income.Description).
		Scan(&i.ID, &i.UserID, &i.Source, &i.Amount, &i.Date, &i.Description, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *IncomeStore) ListByUser(ctx context.Context, userID int64) ([]models.Income, error) {
	query := `
		SELECT id, user_id, source, amount, date, description, created_at, updated_at
		FROM incomes WHERE user_id = $1
		ORDER BY date DESC
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []models.Income
	for rows.Next() {
		var i models.Income
		err := rows.Scan(&i.ID, &i.UserID, &i.Source, &i.Amount, &i.Date, &i.Description, &i.CreatedAt, &i.UpdatedAt)
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, i)
	}
	return incomes, rows.Err()
}

func (s *IncomeStore) GetByID(ctx context.Context, userID, incomeID int64) (*models.Income, error) {
	query := `
		SELECT id, user_id, source, amount, date, description, created_at, updated_at
		FROM incomes WHERE id = $1 AND user_id = $2
	`
	var i models.Income
	err := s.pool.QueryRow(ctx, query, incomeID, userID).
		Scan(&i.ID, &i.UserID, &i.Source, &i.Amount, &i.Date, &i.Description, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (s *IncomeStore) Delete(ctx context.Context, userID, incomeID int64) error {
	query := `DELETE FROM incomes WHERE id = $1 AND user_id = $2`
	cmd, err := s.pool.Exec(ctx, query, incomeID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}
