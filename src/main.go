package main

import (
	"log"
	"net/http"

	"fintrack-server/src/api"
	"fintrack-server/src/config"
	"fintrack-server/src/db"
	sqldb "fintrack-server/src/db/sql"
	"fintrack-server/src/service"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	// Revoked-token cache backing logout
	db.InitCache()

	expenseStore := sqldb.NewExpenseStore(pool)
	svcs := api.Services{
		Auth:      service.NewAuthService(sqldb.NewUserStore(pool), cfg.JWTSecret),
		Expenses:  service.NewExpenseService(expenseStore),
		Incomes:   service.NewIncomeService(sqldb.NewIncomeStore(pool)),
		Budgets:   service.NewBudgetService(sqldb.NewBudgetStore(pool), expenseStore),
		Debts:     service.NewDebtService(sqldb.NewDebtStore(pool)),
		Recurring: service.NewRecurringExpenseService(sqldb.NewRecurringExpenseStore(pool)),
	}

	// Router
	router := api.NewRouter(svcs, cfg.AllowedOrigins)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
