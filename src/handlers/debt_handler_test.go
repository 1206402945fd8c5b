package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"fintrack-server/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createDebt(t *testing.T, router http.Handler, token string, total, paid float64) models.Debt {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/debts", token, map[string]interface{}{
		"creditorName": "Bank",
		"totalAmount":  total,
		"amountPaid":   paid,
		"interestRate": 4.5,
		"dueDate":      "2027-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Debt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func TestDebtCreateDerivesFields(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "debt@example.com")

	created := createDebt(t, router, token, 1000, 250)
	assert.Equal(t, models.DebtStatusActive, created.Status)
	assert.Equal(t, 750.0, created.Remaining)
}

func TestDebtPaymentEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "payment@example.com")

	created := createDebt(t, router, token, 500, 100)
	url := fmt.Sprintf("/api/debts/%d/payment", created.ID)

	// Payment exceeding the remaining balance is rejected outright.
	w := doRequest(t, router, http.MethodPost, url, token, models.DebtPaymentRequest{Amount: 450})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPost, url, token, models.DebtPaymentRequest{Amount: 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPost, url, token, models.DebtPaymentRequest{Amount: 150})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var debt models.Debt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &debt))
	assert.Equal(t, 250.0, debt.AmountPaid)
	assert.Equal(t, 250.0, debt.Remaining)
	assert.Equal(t, models.DebtStatusActive, debt.Status)

	// Paying off the exact remainder flips the status.
	w = doRequest(t, router, http.MethodPost, url, token, models.DebtPaymentRequest{Amount: 250})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &debt))
	assert.Equal(t, 0.0, debt.Remaining)
	assert.Equal(t, models.DebtStatusPaidOff, debt.Status)
}

func TestDebtPaymentCrossUser(t *testing.T) {
	router := newTestRouter(t)
	tokenA := registerUser(t, router, "debt-a@example.com")
	tokenB := registerUser(t, router, "debt-b@example.com")

	created := createDebt(t, router, tokenA, 500, 0)
	url := fmt.Sprintf("/api/debts/%d/payment", created.ID)

	w := doRequest(t, router, http.MethodPost, url, tokenB, models.DebtPaymentRequest{Amount: 100})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Debt not found", errorMessage(t, w))
}

func TestDebtUpdateStatus(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "debt-update@example.com")

	created := createDebt(t, router, token, 500, 0)
	url := fmt.Sprintf("/api/debts/%d", created.ID)

	w := doRequest(t, router, http.MethodPut, url, token, map[string]interface{}{"status": "forgiven"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A zero amountPaid is an intentional reset, not an omitted field.
	w = doRequest(t, router, http.MethodPut, url, token, map[string]interface{}{"amountPaid": 0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var debt models.Debt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &debt))
	assert.Equal(t, 0.0, debt.AmountPaid)
	assert.Equal(t, 500.0, debt.Remaining)
}
