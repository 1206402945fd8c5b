package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"fintrack-server/src/db"
	"fintrack-server/src/middleware"
	"fintrack-server/src/models"
	"fintrack-server/src/service"
	"fintrack-server/src/util"
)

func Register(svc *service.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode register request body: %v", err)
			util.RespondError(w, http.StatusBadRequest, "invalid request")
			return
		}

		token, user, err := svc.Register(r.Context(), req)
		if err != nil {
			handleServiceError(w, err, "User not found", fmt.Sprintf("Registration failed for email %s", req.Email))
			return
		}

		log.Printf("INFO: Successful registration - User: %s, ID: %d", user.Email, user.ID)
		util.RespondJSON(w, http.StatusCreated, models.AuthResponse{Token: token, User: user})
	}
}

func Login(svc *service.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode login request body: %v", err)
			util.RespondError(w, http.StatusBadRequest, "invalid request")
			return
		}

		token, user, err := svc.Login(r.Context(), req)
		if err != nil {
			handleServiceError(w, err, "User not found", fmt.Sprintf("Login failed for email %s from IP %s", req.Email, r.RemoteAddr))
			return
		}

		log.Printf("INFO: Successful login - User: %s, ID: %d", user.Email, user.ID)
		util.RespondJSON(w, http.StatusOK, models.AuthResponse{Token: token, User: user})
	}
}

func GetCurrentUser(svc *service.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)

		user, err := svc.GetUser(r.Context(), userID)
		if err != nil {
			handleServiceError(w, err, "User not found", fmt.Sprintf("Failed to get user %d", userID))
			return
		}

		util.RespondJSON(w, http.StatusOK, user)
	}
}

// Logout revokes the presented token until its natural expiry. The client
// clears its local session regardless of the outcome here.
func Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		token := middleware.BearerToken(r)

		if claims, err := middleware.ParseTokenFromRequest(r); err == nil {
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				db.RevokeToken(token, time.Until(exp.Time))
			}
		}

		log.Printf("INFO: User %d logged out", userID)
		util.RespondJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
	}
}
