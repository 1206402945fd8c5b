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

func CreateRecurringExpense(svc *service.RecurringExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		var req models.CreateRecurringExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create recurring expense request body for user %d: %v", userID, err)
			util.RespondError(w, http.StatusBadRequest, "invalid request")
			return
		}
		created, err := svc.Create(r.Context(), userID, req)
		if err != nil {
			handleServiceError(w, err, "Recurring expense not found", fmt.Sprintf("Failed to create recurring expense for user %d", userID))
			return
		}
		log.Printf("INFO: Created recurring expense id %d for user %d, frequency %s", created.ID, userID, created.Frequency)
		util.RespondJSON(w, http.StatusCreated, created)
	}
}

// GetRecurringExpenses returns the user's recurring expenses with the
// due-soon flag computed at display time.
func GetRecurringExpenses(svc *service.RecurringExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		recurring, err := svc.List(r.Context(), userID)
		if err != nil {
			handleServiceError(w, err, "Recurring expense not found", fmt.Sprintf("Failed to get recurring expenses for user %d", userID))
			return
		}
		if recurring == nil {
			recurring = []models.RecurringExpense{}
		}
		util.RespondJSON(w, http.StatusOK, recurring)
	}
}

func GetRecurringExpenseByID(svc *service.RecurringExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		recurringID, err := idParam(r, "recurring_id")
		if err != nil {
			util.RespondError(w, http.StatusBadRequest, "invalid recurring expense id")
			return
		}
		recurring, err := svc.GetByID(r.Context(), userID, recurringID)
		if err != nil {
			handleServiceError(w, err, "Recurring expense not found", fmt.Sprintf("Recurring expense id %d lookup failed for user %d", recurringID, userID))
			return
		}
		util.RespondJSON(w, http.StatusOK, recurring)
	}
}

func UpdateRecurringExpense(svc *service.RecurringExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		recurringID, err := idParam(r, "recurring_id")
		if err != nil {
			util.RespondError(w, http.StatusBadRequest, "invalid recurring expense id")
			return
		}
		var req models.UpdateRecurringExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update recurring expense request body for user %d: %v", userID, err)
			util.RespondError(w, http.StatusBadRequest, "invalid request")
			return
		}
		updated, err := svc.Update(r.Context(), userID, recurringID, req)
		if err != nil {
			handleServiceError(w, err, "Recurring expense not found", fmt.Sprintf("Failed to update recurring expense id %d for user %d", recurringID, userID))
			return
		}
		log.Printf("INFO: Updated recurring expense id %d for user %d", updated.ID, userID)
		util.RespondJSON(w, http.StatusOK, updated)
	}
}

func DeleteRecurringExpense(svc *service.RecurringExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		recurringID, err := idParam(r, "recurring_id")
		if err != nil {
			util.RespondError(w, http.StatusBadRequest, "invalid recurring expense id")
			return
		}
		if err := svc.Delete(r.Context(), userID, recurringID); err != nil {
			handleServiceError(w, err, "Recurring expense not found", fmt.Sprintf("Failed to delete recurring expense id %d for user %d", recurringID, userID))
			return
		}
		log.Printf("INFO: Deleted recurring expense id %d for user %d", recurringID, userID)
		util.RespondJSON(w, http.StatusOK, map[string]string{"message": "Recurring expense deleted successfully"})
	}
}
