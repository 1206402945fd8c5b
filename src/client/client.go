// Package client is the Go counterpart of the web client's API layer: a
// thin typed wrapper over the REST API that attaches the session's bearer
// token to every request and decodes the server's {message} error envelope.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fintrack-server/src/models"
)

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

func New(baseURL string, session *Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		session: session,
	}
}

func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.session.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+c.session.Token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Message == "" {
			envelope.Message = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Auth

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	if err := c.session.SetToken(resp.Token); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	if err := c.session.SetToken(resp.Token); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout is best-effort: the local session is cleared even when the server
// call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if clearErr := c.session.Clear(); clearErr != nil {
		return clearErr
	}
	return err
}

// Expenses

func (c *Client) Expenses(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := c.do(ctx, http.MethodGet, "/expenses", nil, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (c *Client) CreateExpense(ctx context.Context, req models.CreateExpenseRequest) (*models.Expense, error) {
	var expense models.Expense
	if err := c.do(ctx, http.MethodPost, "/expenses", req, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (c *Client) UpdateExpense(ctx context.Context, id int64, req models.UpdateExpenseRequest) (*models.Expense, error) {
	var expense models.Expense
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/expenses/%d", id), req, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/expenses/%d", id), nil, nil)
}

// Income

func (c *Client) Incomes(ctx context.Context) ([]models.Income, error) {
	var incomes []models.Income
	if err := c.do(ctx, http.MethodGet, "/income", nil, &incomes); err != nil {
		return nil, err
	}
	return incomes, nil
}

func (c *Client) CreateIncome(ctx context.Context, req models.CreateIncomeRequest) (*models.Income, error) {
	var income models.Income
	if err := c.do(ctx, http.MethodPost, "/income", req, &income); err != nil {
		return nil, err
	}
	return &income, nil
}

func (c *Client) DeleteIncome(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/income/%d", id), nil, nil)
}

// Budgets

func (c *Client) Budgets(ctx context.Context) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := c.do(ctx, http.MethodGet, "/budgets", nil, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (c *Client) CreateBudget(ctx context.Context, req models.CreateBudgetRequest) (*models.Budget, error) {
	var budget models.Budget
	if err := c.do(ctx, http.MethodPost, "/budgets", req, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (c *Client) UpdateBudget(ctx context.Context, id int64, req models.UpdateBudgetRequest) (*models.Budget, error) {
	var budget models.Budget
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/budgets/%d", id), req, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (c *Client) DeleteBudget(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/budgets/%d", id), nil, nil)
}

// Debts

func (c *Client) Debts(ctx context.Context) ([]models.Debt, error) {
	var debts []models.Debt
	if err := c.do(ctx, http.MethodGet, "/debts", nil, &debts); err != nil {
		return nil, err
	}
	return debts, nil
}

func (c *Client) CreateDebt(ctx context.Context, req models.CreateDebtRequest) (*models.Debt, error) {
	var debt models.Debt
	if err := c.do(ctx, http.MethodPost, "/debts", req, &debt); err != nil {
		return nil, err
	}
	return &debt, nil
}

func (c *Client) UpdateDebt(ctx context.Context, id int64, req models.UpdateDebtRequest) (*models.Debt, error) {
	var debt models.Debt
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/debts/%d", id), req, &debt); err != nil {
		return nil, err
	}
	return &debt, nil
}

func (c *Client) RecordDebtPayment(ctx context.Context, id int64, amount float64) (*models.Debt, error) {
	var debt models.Debt
	req := models.DebtPaymentRequest{Amount: amount}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/debts/%d/payment", id), req, &debt); err != nil {
		return nil, err
	}
	return &debt, nil
}

func (c *Client) DeleteDebt(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/debts/%d", id), nil, nil)
}

// Recurring expenses

func (c *Client) RecurringExpenses(ctx context.Context) ([]models.RecurringExpense, error) {
	var recurring []models.RecurringExpense
	if err := c.do(ctx, http.MethodGet, "/recurring", nil, &recurring); err != nil {
		return nil, err
	}
	return recurring, nil
}

func (c *Client) CreateRecurringExpense(ctx context.Context, req models.CreateRecurringExpenseRequest) (*models.RecurringExpense, error) {
	var recurring models.RecurringExpense
	if err := c.do(ctx, http.MethodPost, "/recurring", req, &recurring); err != nil {
		return nil, err
	}
	return &recurring, nil
}

func (c *Client) UpdateRecurringExpense(ctx context.Context, id int64, req models.UpdateRecurringExpenseRequest) (*models.RecurringExpense, error) {
	var recurring models.RecurringExpense
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/recurring/%d", id), req, &recurring); err != nil {
		return nil, err
	}
	return &recurring, nil
}

func (c *Client) DeleteRecurringExpense(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/recurring/%d", id), nil, nil)
}

// DebtProgress is the client-side derivation shown next to each debt:
// percentage of the total already paid off.
func DebtProgress(debt *models.Debt) float64 {
	if debt.TotalAmount <= 0 {
		return 0
	}
	return (debt.TotalAmount - debt.Remaining) / debt.TotalAmount * 100
}
