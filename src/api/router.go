package api

import (
	"net/http"

	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"
	"fintrack-server/src/service"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
)

type Services struct {
	Auth      *service.AuthService
	Expenses  *service.ExpenseService
	Incomes   *service.IncomeService
	Budgets   *service.BudgetService
	Debts     *service.DebtService
	Recurring *service.RecurringExpenseService
}

func NewRouter(svcs Services, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RecoverMiddleware)
	r.Use(middleware.CORSMiddleware(allowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		util.RespondError(w, http.StatusNotFound, "Route not found")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			util.RespondJSON(w, http.StatusOK, map[string]string{"message": "Server is running"})
		})

		r.Post("/auth/register", handlers.Register(svcs.Auth))
		r.Post("/auth/login", handlers.Login(svcs.Auth))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
			// Auth
			r.Get("/auth/me", handlers.GetCurrentUser(svcs.Auth))
			r.Post("/auth/logout", handlers.Logout())

			// Expenses
			r.Post("/expenses", handlers.CreateExpense(svcs.Expenses))
			r.Get("/expenses", handlers.GetExpenses(svcs.Expenses))
			r.Get("/expenses/{expense_id}", handlers.GetExpenseByID(svcs.Expenses))
			r.Put("/expenses/{expense_id}", handlers.UpdateExpense(svcs.Expenses))
			r.Delete("/expenses/{expense_id}", handlers.DeleteExpense(svcs.Expenses))

			// Income (no update: records are created and deleted only)
			r.Post("/income", handlers.CreateIncome(svcs.Incomes))
			r.Get("/income", handlers.GetIncomes(svcs.Incomes))
			r.Get("/income/{income_id}", handlers.GetIncomeByID(svcs.Incomes))
			r.Delete("/income/{income_id}", handlers.DeleteIncome(svcs.Incomes))

			// Budgets
			r.Post("/budgets", handlers.CreateBudget(svcs.Budgets))
			r.Get("/budgets", handlers.GetBudgets(svcs.Budgets))
			r.Get("/budgets/{budget_id}", handlers.GetBudgetByID(svcs.Budgets))
			r.Put("/budgets/{budget_id}", handlers.UpdateBudget(svcs.Budgets))
			r.Delete("/budgets/{budget_id}", handlers.DeleteBudget(svcs.Budgets))

			// Debts
			r.Post("/debts", handlers.CreateDebt(svcs.Debts))
			r.Get("/debts", handlers.GetDebts(svcs.Debts))
			r.Get("/debts/{debt_id}", handlers.GetDebtByID(svcs.Debts))
			r.Put("/debts/{debt_id}", handlers.UpdateDebt(svcs.Debts))
			r.Post("/debts/{debt_id}/payment", handlers.RecordDebtPayment(svcs.Debts))
			r.Delete("/debts/{debt_id}", handlers.DeleteDebt(svcs.Debts))

			// Recurring expenses
			r.Post("/recurring", handlers.CreateRecurringExpense(svcs.Recurring))
			r.Get("/recurring", handlers.GetRecurringExpenses(svcs.Recurring))
			r.Get("/recurring/{recurring_id}", handlers.GetRecurringExpenseByID(svcs.Recurring))
			r.Put("/recurring/{recurring_id}", handlers.UpdateRecurringExpense(svcs.Recurring))
			r.Delete("/recurring/{recurring_id}", handlers.DeleteRecurringExpense(svcs.Recurring))
		})
	})

	return r
}
