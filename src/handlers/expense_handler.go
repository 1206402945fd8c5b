package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"fintrack-server/src/models"
	"fintrack-server/src/service"
	"fintrack-server/src/util"
)

func CreateExpense(svc *service.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		var req models.CreateExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create expense request body for user %d: %v", userID, err)
			util.RespondError(w, http.StatusBadRequest, "invalid request")
			return
		}
		created, err := svc.Create(r.Context(), userID, req)
		if err != nil {
			handleServiceError(w, err, "Expense not found", fmt.Sprintf("Failed to create expense for user %d", userID))
			return
		}
		log.Printf("INFO: Created expense id %d for user %d, category %s", created.ID, userID, created.Category)
		util.RespondJSON(w, http.StatusCreated, created)
	}
}

func GetExpenses(svc *service.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		expenses, err := svc.List(r.Context(), userID)
		if err != nil {
			handleServiceError(w, err, "Expense not found", fmt.Sprintf("Failed to get expenses for user %d", userID))
			return
		}
		if expenses == nil {
			expenses = []models.Expense{}
		}
		util.RespondJSON(w, http.StatusOK, expenses)
	}
}

func GetExpenseByID(svc *service.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		expenseID, err := idParam(r, "expense_id")
		if err != nil {
			util.RespondError(w, http.StatusBadRequest, "invalid expense id")
			return
		}
		expense, err := svc.GetByID(r.Context(), userID, expenseID)
		if err != nil {
			handleServiceError(w, err, "Expense not found", fmt.Sprintf("Expense id %d lookup failed for user %d", expenseID, userID))
			return
		}
		util.RespondJSON(w, http.StatusOK, expense)
	}
}

func UpdateExpense(svc *service.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		expenseID, err := idParam(r, "expense_id")
		if err != nil {
			util.RespondError(w, http.StatusBadRequest, "invalid expense id")
			return
		}
		var req models.UpdateExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update expense request body for user %d: %v", userID, err)
			util.RespondError(w, http.StatusBadRequest, "invalid request")
			return
		}
		updated, err := svc.Update(r.Context(), userID, expenseID, req)
		if err != nil {
			handleServiceError(w, err, "Expense not found", fmt.Sprintf("Failed to update expense id %d for user %d", expenseID, userID))
			return
		}
		log.Printf("INFO: Updated expense id %d for user %d", updated.ID, userID)
		util.RespondJSON(w, http.StatusOK, updated)
	}
}

func DeleteExpense(svc *service.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		expenseID, err := idParam(r, "expense_id")
		if err != nil {
			util.RespondError(w, http.StatusBadRequest, "invalid expense id")
			return
		}
		if err := svc.Delete(r.Context(), userID, expenseID); err != nil {
			handleServiceError(w, err, "Expense not found", fmt.Sprintf("Failed to delete expense id %d for user %d", expenseID, userID))
			return
		}
		log.Printf("INFO: Deleted expense id %d for user %d", expenseID, userID)
		util.RespondJSON(w, http.StatusOK, map[string]string{"message": "Expense deleted successfully"})
	}
}
