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

func CreateDebt(svc *service.DebtService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		var req models.CreateDebtRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create debt request body for user %d: %v", userID, err)
			util.RespondError(w, http.StatusBadRequest, "invalid request")
			return
		}
		created, err := svc.Create(r.Context(), userID, req)
		if err != nil {
			handleServiceError(w, err, "Debt not found", fmt.Sprintf("Failed to create debt for user %d", userID))
			return
		}
		log.Printf("INFO: Created debt id %d for user %d, creditor %s", created.ID, userID, created.CreditorName)
		util.RespondJSON(w, http.StatusCreated, created)
	}
}

func GetDebts(svc *service.DebtService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		debts, err := svc.List(r.Context(), userID)
		if err != nil {
			handleServiceError(w, err, "Debt not found", fmt.Sprintf("Failed to get debts for user %d", userID))
			return
		}
		if debts == nil {
			debts = []models.Debt{}
		}
		util.RespondJSON(w, http.StatusOK, debts)
	}
}

func GetDebtByID(svc *service.DebtService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		debtID, err := idParam(r, "debt_id")
		if err != nil {
			util.RespondError(w, http.StatusBadRequest, "invalid debt id")
			return
		}
		debt, err := svc.GetByID(r.Context(), userID, debtID)
		if err != nil {
			handleServiceError(w, err, "Debt not found", fmt.Sprintf("Debt id %d lookup failed for user %d", debtID, userID))
			return
		}
		util.RespondJSON(w, http.StatusOK, debt)
	}
}

func UpdateDebt(svc *service.DebtService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		debtID, err := idParam(r, "debt_id")
		if err != nil {
			util.RespondError(w, http.StatusBadRequest, "invalid debt id")
			return
		}
		var req models.UpdateDebtRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update debt request body for user %d: %v", userID, err)
			util.RespondError(w, http.StatusBadRequest, "invalid request")
			return
		}
		updated, err := svc.Update(r.Context(), userID, debtID, req)
		if err != nil {
			handleServiceError(w, err, "Debt not found", fmt.Sprintf("Failed to update debt id %d for user %d", debtID, userID))
			return
		}
		log.Printf("INFO: Updated debt id %d for user %d", updated.ID, userID)
		util.RespondJSON(w, http.StatusOK, updated)
	}
}

// RecordDebtPayment applies a payment against the debt's remaining balance.
func RecordDebtPayment(svc *service.DebtService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		debtID, err := idParam(r, "debt_id")
		if err != nil {
			util.RespondError(w, http.StatusBadRequest, "invalid debt id")
			return
		}
		var req models.DebtPaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode debt payment request body for user %d: %v", userID, err)
			util.RespondError(w, http.StatusBadRequest, "invalid request")
			return
		}
		updated, err := svc.RecordPayment(r.Context(), userID, debtID, req.Amount)
		if err != nil {
			handleServiceError(w, err, "Debt not found", fmt.Sprintf("Failed to record payment on debt id %d for user %d", debtID, userID))
			return
		}
		log.Printf("INFO: Recorded payment of %.2f on debt id %d for user %d, status %s", req.Amount, debtID, userID, updated.Status)
		util.RespondJSON(w, http.StatusOK, updated)
	}
}

func DeleteDebt(svc *service.DebtService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		debtID, err := idParam(r, "debt_id")
		if err != nil {
			util.RespondError(w, http.StatusBadRequest, "invalid debt id")
			return
		}
		if err := svc.Delete(r.Context(), userID, debtID); err != nil {
			handleServiceError(w, err, "Debt not found", fmt.Sprintf("Failed to delete debt id %d for user %d", debtID, userID))
			return
		}
		log.Printf("INFO: Deleted debt id %d for user %d", debtID, userID)
		util.RespondJSON(w, http.StatusOK, map[string]string{"message": "Debt deleted successfully"})
	}
}
