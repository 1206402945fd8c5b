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

func CreateBudget(svc *service.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		var req models.CreateBudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create budget request body for user %d: %v", userID, err)
			util.RespondError(w, http.StatusBadRequest, "invalid request")
			return
		}
		created, err := svc.Create(r.Context(), userID, req)
		if err != nil {
			handleServiceError(w, err, "Budget not found", fmt.Sprintf("Failed to create budget for user %d", userID))
			return
		}
		log.Printf("INFO: Created budget id %d for user %d, category %s", created.ID, userID, created.Category)
		util.RespondJSON(w, http.StatusCreated, created)
	}
}

// GetBudgets returns the user's budgets with spent computed as of query time.
func GetBudgets(svc *service.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		budgets, err := svc.List(r.Context(), userID)
		if err != nil {
			handleServiceError(w, err, "Budget not found", fmt.Sprintf("Failed to get budgets for user %d", userID))
			return
		}
		if budgets == nil {
			budgets = []models.Budget{}
		}
		util.RespondJSON(w, http.StatusOK, budgets)
	}
}

func GetBudgetByID(svc *service.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		budgetID, err := idParam(r, "budget_id")
		if err != nil {
			util.RespondError(w, http.StatusBadRequest, "invalid budget id")
			return
		}
		budget, err := svc.GetByID(r.Context(), userID, budgetID)
		if err != nil {
			handleServiceError(w, err, "Budget not found", fmt.Sprintf("Budget id %d lookup failed for user %d", budgetID, userID))
			return
		}
		util.RespondJSON(w, http.StatusOK, budget)
	}
}

func UpdateBudget(svc *service.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		budgetID, err := idParam(r, "budget_id")
		if err != nil {
			util.RespondError(w, http.StatusBadRequest, "invalid budget id")
			return
		}
		var req models.UpdateBudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update budget request body for user %d: %v", userID, err)
			util.RespondError(w, http.StatusBadRequest, "invalid request")
			return
		}
		updated, err := svc.Update(r.Context(), userID, budgetID, req)
		if err != nil {
			handleServiceError(w, err, "Budget not found", fmt.Sprintf("Failed to update budget id %d for user %d", budgetID, userID))
			return
		}
		log.Printf("INFO: Updated budget id %d for user %d", updated.ID, userID)
		util.RespondJSON(w, http.StatusOK, updated)
	}
}

func DeleteBudget(svc *service.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		budgetID, err := idParam(r, "budget_id")
		if err != nil {
			util.RespondError(w, http.StatusBadRequest, "invalid budget id")
			return
		}
		if err := svc.Delete(r.Context(), userID, budgetID); err != nil {
			handleServiceError(w, err, "Budget not found", fmt.Sprintf("Failed to delete budget id %d for user %d", budgetID, userID))
			return
		}
		log.Printf("INFO: Deleted budget id %d for user %d", budgetID, userID)
		util.RespondJSON(w, http.StatusOK, map[string]string{"message": "Budget deleted successfully"})
	}
}
