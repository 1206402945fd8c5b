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

func CreateIncome(svc *service.IncomeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		var req models.CreateIncomeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create income request body for user %d: %v", userID, err)
			util.RespondError(w, http.StatusBadRequest, "invalid request")
			return
		}
		created, err := svc.Create(r.Context(), userID, req)
		if err != nil {
			handleServiceError(w, err, "Income not found", fmt.Sprintf("Failed to create income for user %d", userID))
			return
		}
		log.Printf("INFO: Created income id %d for user %d, source %s", created.ID, userID, created.Source)
		util.RespondJSON(w, http.StatusCreated, created)
	}
}

func GetIncomes(svc *service.IncomeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		incomes, err := svc.List(r.Context(), userID)
		if err != nil {
			handleServiceError(w, err, "Income not found", fmt.Sprintf("Failed to get incomes for user %d", userID))
			return
		}
		if incomes == nil {
			incomes = []models.Income{}
		}
		util.RespondJSON(w, http.StatusOK, incomes)
	}
}

func GetIncomeByID(svc *service.IncomeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		incomeID, err := idParam(r, "income_id")
		if err != nil {
			util.RespondError(w, http.StatusBadRequest, "invalid income id")
			return
		}
		income, err := svc.GetByID(r.Context(), userID, incomeID)
		if err != nil {
			handleServiceError(w, err, "Income not found", fmt.Sprintf("Income id %d lookup failed for user %d", incomeID, userID))
			return
		}
		util.RespondJSON(w, http.StatusOK, income)
	}
}

func DeleteIncome(svc *service.IncomeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		incomeID, err := idParam(r, "income_id")
		if err != nil {
			util.RespondError(w, http.StatusBadRequest, "invalid income id")
			return
		}
		if err := svc.Delete(r.Context(), userID, incomeID); err != nil {
			handleServiceError(w, err, "Income not found", fmt.Sprintf("Failed to delete income id %d for user %d", incomeID, userID))
			return
		}
		log.Printf("INFO: Deleted income id %d for user %d", incomeID, userID)
		util.RespondJSON(w, http.StatusOK, map[string]string{"message": "Income deleted successfully"})
	}
}
