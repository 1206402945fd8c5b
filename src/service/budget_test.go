package service_test

import (
	"context"
	"testing"
	"time"

	"fintrack-server/src/models"
	"fintrack-server/src/service"
	"fintrack-server/src/service/servicetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBudgetService() (*service.BudgetService, *service.ExpenseService) {
	expenseStore := servicetest.NewExpenseStore()
	budgetStore := servicetest.NewBudgetStore()
	return service.NewBudgetService(budgetStore, expenseStore), service.NewExpenseService(expenseStore)
}

func TestBudgetCreateValidation(t *testing.T) {
	svc, _ := newBudgetService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, models.CreateBudgetRequest{Limit: 100, Month: "2026-08"})
	assert.True(t, service.IsValidationError(err))

	_, err = svc.Create(ctx, 1, models.CreateBudgetRequest{Category: "food", Month: "2026-08"})
	assert.True(t, service.IsValidationError(err))

	_, err = svc.Create(ctx, 1, models.CreateBudgetRequest{Category: "food", Limit: -1, Month: "2026-08"})
	assert.True(t, service.IsValidationError(err))
}

func TestBudgetSpentAggregation(t *testing.T) {
	budgets, expenses := newBudgetService()
	ctx := context.Background()
	now := time.Now()

	for _, amount := range []float64{30.00, 45.50} {
		_, err := expenses.Create(ctx, 1, models.CreateExpenseRequest{
			Description: "groceries",
			Amount:      amount,
			Category:    "food",
			Date:        now,
		})
		require.NoError(t, err)
	}
	// Different category and different user must not leak into spent.
	_, err := expenses.Create(ctx, 1, models.CreateExpenseRequest{
		Description: "bus", Amount: 5, Category: "transport", Date: now,
	})
	require.NoError(t, err)
	_, err = expenses.Create(ctx, 2, models.CreateExpenseRequest{
		Description: "dinner", Amount: 99, Category: "food", Date: now,
	})
	require.NoError(t, err)

	// Spent is the lifetime category sum: the budget's month plays no part.
	created, err := budgets.Create(ctx, 1, models.CreateBudgetRequest{Category: "food", Limit: 200, Month: "1999-01"})
	require.NoError(t, err)

	list, err := budgets.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 75.50, list[0].Spent)

	got, err := budgets.GetByID(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 75.50, got.Spent)
}

func TestBudgetPartialUpdateAppliesPresentFieldsOnly(t *testing.T) {
	svc, _ := newBudgetService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, models.CreateBudgetRequest{Category: "food", Limit: 200, Month: "2026-08"})
	require.NoError(t, err)

	month := "2026-09"
	updated, err := svc.Update(ctx, 1, created.ID, models.UpdateBudgetRequest{Month: &month})
	require.NoError(t, err)
	assert.Equal(t, "2026-09", updated.Month)
	assert.Equal(t, "food", updated.Category)
	assert.Equal(t, 200.0, updated.Limit)
}

func TestBudgetOwnership(t *testing.T) {
	svc, _ := newBudgetService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, models.CreateBudgetRequest{Category: "food", Limit: 200, Month: "2026-08"})
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, 2, created.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	err = svc.Delete(ctx, 2, created.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
