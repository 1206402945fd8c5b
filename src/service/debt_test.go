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

func newDebtService() *service.DebtService {
	return service.NewDebtService(servicetest.NewDebtStore())
}

func createDebt(t *testing.T, svc *service.DebtService, userID int64, total, paid float64) *models.Debt {
	t.Helper()
	created, err := svc.Create(context.Background(), userID, models.CreateDebtRequest{
		CreditorName: "First Bank",
		TotalAmount:  total,
		AmountPaid:   paid,
		InterestRate: 4.5,
		DueDate:      time.Now().Add(90 * 24 * time.Hour),
	})
	require.NoError(t, err)
	return created
}

func TestDebtCreateDefaults(t *testing.T) {
	svc := newDebtService()

	created := createDebt(t, svc, 1, 500, 0)
	assert.Equal(t, models.DebtStatusActive, created.Status)
	assert.Equal(t, 500.0, created.Remaining)
}

func TestDebtCreateValidation(t *testing.T) {
	svc := newDebtService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, models.CreateDebtRequest{TotalAmount: 100, DueDate: time.Now()})
	assert.True(t, service.IsValidationError(err))

	_, err = svc.Create(ctx, 1, models.CreateDebtRequest{CreditorName: "Bank", DueDate: time.Now()})
	assert.True(t, service.IsValidationError(err))

	_, err = svc.Create(ctx, 1, models.CreateDebtRequest{CreditorName: "Bank", TotalAmount: -5, DueDate: time.Now()})
	assert.True(t, service.IsValidationError(err))
}

func TestDebtRemainingNeverNegative(t *testing.T) {
	svc := newDebtService()
	ctx := context.Background()

	created := createDebt(t, svc, 1, 500, 100)

	// Direct update can overpay; remaining still floors at zero.
	paid := 600.0
	updated, err := svc.Update(ctx, 1, created.ID, models.UpdateDebtRequest{AmountPaid: &paid})
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.Remaining)
}

func TestDebtRecordPaymentPaysOff(t *testing.T) {
	svc := newDebtService()
	ctx := context.Background()

	created := createDebt(t, svc, 1, 500, 100)

	updated, err := svc.RecordPayment(ctx, 1, created.ID, 400)
	require.NoError(t, err)
	assert.Equal(t, 500.0, updated.AmountPaid)
	assert.Equal(t, 0.0, updated.Remaining)
	assert.Equal(t, models.DebtStatusPaidOff, updated.Status)
}

func TestDebtRecordPaymentPartial(t *testing.T) {
	svc := newDebtService()
	ctx := context.Background()

	created := createDebt(t, svc, 1, 500, 100)

	updated, err := svc.RecordPayment(ctx, 1, created.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, 250.0, updated.AmountPaid)
	assert.Equal(t, 250.0, updated.Remaining)
	assert.Equal(t, models.DebtStatusActive, updated.Status)
}

func TestDebtRecordPaymentExceedsRemaining(t *testing.T) {
	svc := newDebtService()
	ctx := context.Background()

	created := createDebt(t, svc, 1, 500, 100)

	_, err := svc.RecordPayment(ctx, 1, created.ID, 450)
	assert.True(t, service.IsValidationError(err), "payment above remaining 400 must be rejected")

	// The rejected payment left nothing behind.
	got, err := svc.GetByID(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.AmountPaid)
	assert.Equal(t, models.DebtStatusActive, got.Status)
}

func TestDebtRecordPaymentValidation(t *testing.T) {
	svc := newDebtService()
	ctx := context.Background()

	created := createDebt(t, svc, 1, 500, 0)

	_, err := svc.RecordPayment(ctx, 1, created.ID, 0)
	assert.True(t, service.IsValidationError(err))

	_, err = svc.RecordPayment(ctx, 1, created.ID, -10)
	assert.True(t, service.IsValidationError(err))
}

func TestDebtUpdateZeroValuesAreApplied(t *testing.T) {
	svc := newDebtService()
	ctx := context.Background()

	created := createDebt(t, svc, 1, 500, 100)

	// amountPaid = 0 and interestRate = 0 are supplied values, not
	// omissions; both must overwrite the stored fields.
	paid, rate := 0.0, 0.0
	updated, err := svc.Update(ctx, 1, created.ID, models.UpdateDebtRequest{AmountPaid: &paid, InterestRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.AmountPaid)
	assert.Equal(t, 0.0, updated.InterestRate)
	assert.Equal(t, 500.0, updated.Remaining)
}

func TestDebtUpdateRejectsUnknownStatus(t *testing.T) {
	svc := newDebtService()
	ctx := context.Background()

	created := createDebt(t, svc, 1, 500, 0)

	status := "defaulted"
	_, err := svc.Update(ctx, 1, created.ID, models.UpdateDebtRequest{Status: &status})
	assert.True(t, service.IsValidationError(err))
}

func TestDebtOwnership(t *testing.T) {
	svc := newDebtService()
	ctx := context.Background()

	created := createDebt(t, svc, 1, 500, 0)

	_, err := svc.RecordPayment(ctx, 2, created.ID, 100)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
