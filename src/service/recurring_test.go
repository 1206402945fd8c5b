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

func newRecurringService() *service.RecurringExpenseService {
	return service.NewRecurringExpenseService(servicetest.NewRecurringExpenseStore())
}

func TestIsDueSoon(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		nextDate time.Time
		want     bool
	}{
		{"today", now, true},
		{"in two days", now.Add(2 * 24 * time.Hour), true},
		{"exactly three days", now.Add(3 * 24 * time.Hour), true},
		{"in four days", now.Add(4 * 24 * time.Hour), false},
		{"yesterday", now.Add(-24 * time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.IsDueSoon(tt.nextDate, now))
		})
	}
}

func TestRecurringCreateDefaultsActive(t *testing.T) {
	svc := newRecurringService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, models.CreateRecurringExpenseRequest{
		Description: "Netflix",
		Amount:      15.99,
		Category:    "entertainment",
		Frequency:   models.FrequencyMonthly,
		NextDate:    time.Now().Add(30 * 24 * time.Hour),
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
}

func TestRecurringCreateExplicitInactive(t *testing.T) {
	svc := newRecurringService()
	ctx := context.Background()

	inactive := false
	created, err := svc.Create(ctx, 1, models.CreateRecurringExpenseRequest{
		Description: "Gym",
		Amount:      30,
		Category:    "health",
		Frequency:   models.FrequencyMonthly,
		NextDate:    time.Now().Add(30 * 24 * time.Hour),
		IsActive:    &inactive,
	})
	require.NoError(t, err)
	assert.False(t, created.IsActive, "an explicit false must not be mistaken for an omitted field")
}

func TestRecurringCreateValidation(t *testing.T) {
	svc := newRecurringService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, models.CreateRecurringExpenseRequest{
		Description: "Rent", Amount: 900, Category: "housing", Frequency: "daily", NextDate: time.Now(),
	})
	assert.True(t, service.IsValidationError(err), "unknown frequency must be rejected")

	_, err = svc.Create(ctx, 1, models.CreateRecurringExpenseRequest{
		Description: "Rent", Amount: 0, Category: "housing", Frequency: models.FrequencyMonthly, NextDate: time.Now(),
	})
	assert.True(t, service.IsValidationError(err))
}

func TestRecurringListFlagsDueSoon(t *testing.T) {
	svc := newRecurringService()
	ctx := context.Background()
	now := time.Now()

	_, err := svc.Create(ctx, 1, models.CreateRecurringExpenseRequest{
		Description: "due", Amount: 10, Category: "bills", Frequency: models.FrequencyWeekly,
		NextDate: now.Add(2 * 24 * time.Hour),
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, models.CreateRecurringExpenseRequest{
		Description: "not yet", Amount: 10, Category: "bills", Frequency: models.FrequencyWeekly,
		NextDate: now.Add(10 * 24 * time.Hour),
	})
	require.NoError(t, err)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].DueSoon)
	assert.False(t, list[1].DueSoon)
}

func TestRecurringUpdateFalseIsApplied(t *testing.T) {
	svc := newRecurringService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, models.CreateRecurringExpenseRequest{
		Description: "Spotify", Amount: 10, Category: "entertainment",
		Frequency: models.FrequencyMonthly, NextDate: time.Now().Add(10 * 24 * time.Hour),
	})
	require.NoError(t, err)
	require.True(t, created.IsActive)

	inactive := false
	updated, err := svc.Update(ctx, 1, created.ID, models.UpdateRecurringExpenseRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, created.Description, updated.Description)
}
