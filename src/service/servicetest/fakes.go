// Package servicetest provides in-memory store implementations mirroring
// the SQL stores' contracts (ownership scoping, ordering, sentinel errors)
// for use in service and handler tests.
package servicetest

import (
	"context"
	"sort"
	"sync"

	"fintrack-server/src/models"
	"fintrack-server/src/service"
)

type ExpenseStore struct {
	mu      sync.Mutex
	nextID  int64
	records []models.Expense
}

func NewExpenseStore() *ExpenseStore { return &ExpenseStore{} }

func (s *ExpenseStore) Insert(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	expense.ID = s.nextID
	s.records = append(s.records, *expense)
	e := *expense
	return &e, nil
}

func (s *ExpenseStore) ListByUser(ctx context.Context, userID int64) ([]models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Expense
	for _, e := range s.records {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *ExpenseStore) GetByID(ctx context.Context, userID, expenseID int64) (*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.records {
		if e.ID == expenseID && e.UserID == userID {
			out := e
			return &out, nil
		}
	}
	return nil, service.ErrNotFound
}

func (s *ExpenseStore) Update(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.records {
		if e.ID == expense.ID && e.UserID == expense.UserID {
			s.records[i] = *expense
			out := *expense
			return &out, nil
		}
	}
	return nil, service.ErrNotFound
}

func (s *ExpenseStore) Delete(ctx context.Context, userID, expenseID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.records {
		if e.ID == expenseID && e.UserID == userID {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return service.ErrNotFound
}

func (s *ExpenseStore) SumByCategory(ctx context.Context, userID int64, category string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum float64
	for _, e := range s.records {
		if e.UserID == userID && e.Category == category {
			sum += e.Amount
		}
	}
	return sum, nil
}

type IncomeStore struct {
	mu      sync.Mutex
	nextID  int64
	records []models.Income
}

func NewIncomeStore() *IncomeStore { return &IncomeStore{} }

func (s *IncomeStore) Insert(ctx context.Context, income *models.Income) (*models.Income, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	income.ID = s.nextID
	s.records = append(s.records, *income)
	i := *income
	return &i, nil
}

func (s *IncomeStore) ListByUser(ctx context.Context, userID int64) ([]models.Income, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Income
	for _, i := range s.records {
		if i.UserID == userID {
			out = append(out, i)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *IncomeStore) GetByID(ctx context.Context, userID, incomeID int64) (*models.Income, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, i := range s.records {
		if i.ID == incomeID && i.UserID == userID {
			out := i
			return &out, nil
		}
	}
	return nil, service.ErrNotFound
}

func (s *IncomeStore) Delete(ctx context.Context, userID, incomeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx, i := range s.records {
		if i.ID == incomeID && i.UserID == userID {
			s.records = append(s.records[:idx], s.records[idx+1:]...)
			return nil
		}
	}
	return service.ErrNotFound
}

type BudgetStore struct {
	mu      sync.Mutex
	nextID  int64
	records []models.Budget
}

func NewBudgetStore() *BudgetStore { return &BudgetStore{} }

func (s *BudgetStore) Insert(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	budget.ID = s.nextID
	s.records = append(s.records, *budget)
	b := *budget
	return &b, nil
}

func (s *BudgetStore) ListByUser(ctx context.Context, userID int64) ([]models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Budget
	for _, b := range s.records {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *BudgetStore) GetByID(ctx context.Context, userID, budgetID int64) (*models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.records {
		if b.ID == budgetID && b.UserID == userID {
			out := b
			return &out, nil
		}
	}
	return nil, service.ErrNotFound
}

func (s *BudgetStore) Update(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.records {
		if b.ID == budget.ID && b.UserID == budget.UserID {
			s.records[i] = *budget
			out := *budget
			return &out, nil
		}
	}
	return nil, service.ErrNotFound
}

func (s *BudgetStore) Delete(ctx context.Context, userID, budgetID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.records {
		if b.ID == budgetID && b.UserID == userID {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return service.ErrNotFound
}

type DebtStore struct {
	mu      sync.Mutex
	nextID  int64
	records []models.Debt
}

func NewDebtStore() *DebtStore { return &DebtStore{} }

func (s *DebtStore) Insert(ctx context.Context, debt *models.Debt) (*models.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	debt.ID = s.nextID
	s.records = append(s.records, *debt)
	d := *debt
	return &d, nil
}

func (s *DebtStore) ListByUser(ctx context.Context, userID int64) ([]models.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Debt
	for _, d := range s.records {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *DebtStore) GetByID(ctx context.Context, userID, debtID int64) (*models.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.records {
		if d.ID == debtID && d.UserID == userID {
			out := d
			return &out, nil
		}
	}
	return nil, service.ErrNotFound
}

func (s *DebtStore) Update(ctx context.Context, debt *models.Debt) (*models.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.records {
		if d.ID == debt.ID && d.UserID == debt.UserID {
			s.records[i] = *debt
			out := *debt
			return &out, nil
		}
	}
	return nil, service.ErrNotFound
}

func (s *DebtStore) Delete(ctx context.Context, userID, debtID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.records {
		if d.ID == debtID && d.UserID == userID {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return service.ErrNotFound
}

type RecurringExpenseStore struct {
	mu      sync.Mutex
	nextID  int64
	records []models.RecurringExpense
}

func NewRecurringExpenseStore() *RecurringExpenseStore { return &RecurringExpenseStore{} }

func (s *RecurringExpenseStore) Insert(ctx context.Context, recurring *models.RecurringExpense) (*models.RecurringExpense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	recurring.ID = s.nextID
	s.records = append(s.records, *recurring)
	r := *recurring
	return &r, nil
}

func (s *RecurringExpenseStore) ListByUser(ctx context.Context, userID int64) ([]models.RecurringExpense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.RecurringExpense
	for _, r := range s.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *RecurringExpenseStore) GetByID(ctx context.Context, userID, recurringID int64) (*models.RecurringExpense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.ID == recurringID && r.UserID == userID {
			out := r
			return &out, nil
		}
	}
	return nil, service.ErrNotFound
}

func (s *RecurringExpenseStore) Update(ctx context.Context, recurring *models.RecurringExpense) (*models.RecurringExpense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == recurring.ID && r.UserID == recurring.UserID {
			s.records[i] = *recurring
			out := *recurring
			return &out, nil
		}
	}
	return nil, service.ErrNotFound
}

func (s *RecurringExpenseStore) Delete(ctx context.Context, userID, recurringID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == recurringID && r.UserID == userID {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return service.ErrNotFound
}

type UserStore struct {
	mu      sync.Mutex
	nextID  int64
	records []models.User
}

func NewUserStore() *UserStore { return &UserStore{} }

func (s *UserStore) Insert(ctx context.Context, email, name string, passwordHash []byte) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.records {
		if u.Email == email {
			return nil, service.ErrEmailTaken
		}
	}
	s.nextID++
	user := models.User{ID: s.nextID, Email: email, Name: name, PasswordHash: passwordHash}
	s.records = append(s.records, user)
	return &user, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.records {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, service.ErrNotFound
}

func (s *UserStore) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.records {
		if u.ID == userID {
			out := u
			return &out, nil
		}
	}
	return nil, service.ErrNotFound
}
