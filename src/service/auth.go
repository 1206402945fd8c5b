package service

import (
	"context"
	"strings"
	"time"

	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long an issued bearer token stays valid.
const TokenTTL = time.Hour * 168

type UserStore interface {
	Insert(ctx context.Context, email, name string, passwordHash []byte) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, userID int64) (*models.User, error)
}

type AuthService struct {
	store  UserStore
	secret []byte
}

func NewAuthService(store UserStore, secret string) *AuthService {
	return &AuthService{store: store, secret: []byte(secret)}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (string, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)

	if email == "" || req.Password == "" || name == "" {
		return "", nil, validationErrorf("email, password and name are required")
	}
	if !util.ValidateEmail(email) {
		return "", nil, validationErrorf("invalid email format")
	}
	if !util.ValidatePassword(req.Password) {
		return "", nil, validationErrorf("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user, err := s.store.Insert(ctx, email, name, hash)
	if err != nil {
		return "", nil, err
	}

	token, err := s.signToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (string, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		// Not-found folds into invalid credentials so login never leaks
		// which emails are registered.
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.store.GetByID(ctx, userID)
}

func (s *AuthService) signToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(TokenTTL).Unix(),
	})
	return token.SignedString(s.secret)
}
