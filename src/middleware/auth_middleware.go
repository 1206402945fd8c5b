package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"fintrack-server/src/db"
	"fintrack-server/src/util"

	"github.com/golang-jwt/jwt/v5"
)

// BearerToken extracts the raw token string from the Authorization header.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// ParseTokenFromRequest extracts and validates JWT token from request, returning claims if valid
func ParseTokenFromRequest(r *http.Request) (jwt.MapClaims, error) {
	tokenString := BearerToken(r)
	if tokenString == "" {
		return nil, fmt.Errorf("missing token")
	}

	if db.IsTokenRevoked(tokenString) {
		return nil, fmt.Errorf("token revoked")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token claims")
}

func JWTAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := ParseTokenFromRequest(r)
		if err != nil {
			util.RespondError(w, http.StatusUnauthorized, err.Error())
			return
		}

		rawID, ok := claims["user_id"].(float64)
		if !ok {
			util.RespondError(w, http.StatusUnauthorized, "invalid token claims")
			return
		}
		userID := int64(rawID)

		ctx := context.WithValue(r.Context(), "user_id", userID)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}
