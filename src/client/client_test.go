package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"fintrack-server/src/api"
	"fintrack-server/src/client"
	"fintrack-server/src/db"
	"fintrack-server/src/models"
	"fintrack-server/src/service"
	"fintrack-server/src/service/servicetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	t.Setenv("JWT_SECRET", "client-test-secret")
	db.InitCache()

	expenseStore := servicetest.NewExpenseStore()
	svcs := api.Services{
		Auth:      service.NewAuthService(servicetest.NewUserStore(), "client-test-secret"),
		Expenses:  service.NewExpenseService(expenseStore),
		Incomes:   service.NewIncomeService(servicetest.NewIncomeStore()),
		Budgets:   service.NewBudgetService(servicetest.NewBudgetStore(), expenseStore),
		Debts:     service.NewDebtService(servicetest.NewDebtStore()),
		Recurring: service.NewRecurringExpenseService(servicetest.NewRecurringExpenseStore()),
	}
	server := httptest.NewServer(api.NewRouter(svcs, []string{"*"}))
	t.Cleanup(server.Close)
	return server
}

func TestClientEndToEnd(t *testing.T) {
	server := newTestServer(t)
	session := client.NewSession(&client.MemoryTokenStore{})
	c := client.New(server.URL+"/api", session)
	ctx := context.Background()

	user, err := c.Register(ctx, models.RegisterRequest{
		Email:    "cli@example.com",
		Password: "longenough",
		Name:     "CLI User",
	})
	require.NoError(t, err)
	assert.Equal(t, "cli@example.com", user.Email)
	assert.True(t, session.Authenticated(), "register must store the token")

	created, err := c.CreateExpense(ctx, models.CreateExpenseRequest{
		Description: "coffee",
		Amount:      4.50,
		Category:    "food",
		Date:        time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	expenses, err := c.Expenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, created.ID, expenses[0].ID)

	me, err := c.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, me.ID)

	token := session.Token()
	require.NoError(t, c.Logout(ctx))
	assert.False(t, session.Authenticated())

	// The server revoked the token too, so replaying it fails.
	require.NoError(t, session.SetToken(token))
	_, err = c.CurrentUser(ctx)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	server := newTestServer(t)
	session := client.NewSession(&client.MemoryTokenStore{})
	c := client.New(server.URL+"/api", session)
	ctx := context.Background()

	_, err := c.Register(ctx, models.RegisterRequest{
		Email:    "bad-email",
		Password: "longenough",
		Name:     "X",
	})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "invalid email format", apiErr.Message)
	assert.False(t, session.Authenticated(), "failed register must not store a token")
}

func TestLogoutClearsSessionEvenOnServerError(t *testing.T) {
	// A server that always fails logout.
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"internal error"}`))
	}))
	defer stub.Close()

	session := client.NewSession(&client.MemoryTokenStore{})
	require.NoError(t, session.SetToken("stale-token"))
	c := client.New(stub.URL+"/api", session)

	err := c.Logout(context.Background())
	require.Error(t, err)
	assert.False(t, session.Authenticated(), "local session clears regardless of the server")
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer stub.Close()

	session := client.NewSession(&client.MemoryTokenStore{})
	require.NoError(t, session.SetToken("abc123"))
	c := client.New(stub.URL, session)

	_, err := c.Expenses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := &client.FileTokenStore{Path: path}

	// Missing file reads as no token rather than an error.
	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "", token)

	require.NoError(t, store.Save("persisted-token"))

	session := client.NewSession(&client.FileTokenStore{Path: path})
	require.NoError(t, session.Hydrate())
	assert.Equal(t, "persisted-token", session.Token())

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing twice is fine")

	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestDebtProgress(t *testing.T) {
	assert.Equal(t, 25.0, client.DebtProgress(&models.Debt{TotalAmount: 1000, Remaining: 750}))
	assert.Equal(t, 100.0, client.DebtProgress(&models.Debt{TotalAmount: 500, Remaining: 0}))
	assert.Equal(t, 0.0, client.DebtProgress(&models.Debt{TotalAmount: 0, Remaining: 0}))
}
