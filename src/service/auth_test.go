package service_test

import (
	"context"
	"testing"

	"fintrack-server/src/models"
	"fintrack-server/src/service"
	"fintrack-server/src/service/servicetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthService() *service.AuthService {
	return service.NewAuthService(servicetest.NewUserStore(), testSecret)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	token, user, err := svc.Register(ctx, models.RegisterRequest{
		Email:    "Ada@Example.com",
		Password: "correct horse",
		Name:     "Ada",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ada@example.com", user.Email, "email is normalized to lower case")

	loginToken, loginUser, err := svc.Login(ctx, models.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
	assert.Equal(t, user.ID, loginUser.ID)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"missing email", models.RegisterRequest{Password: "longenough", Name: "Ada"}},
		{"missing name", models.RegisterRequest{Email: "a@b.com", Password: "longenough"}},
		{"bad email", models.RegisterRequest{Email: "not-an-email", Password: "longenough", Name: "Ada"}},
		{"short password", models.RegisterRequest{Email: "a@b.com", Password: "short", Name: "Ada"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, tt.req)
			assert.True(t, service.IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, models.RegisterRequest{Email: "ada@example.com", Password: "longenough", Name: "Ada"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, models.RegisterRequest{Email: "ada@example.com", Password: "different1", Name: "Other"})
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, models.RegisterRequest{Email: "ada@example.com", Password: "longenough", Name: "Ada"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	// An unknown email yields the same error as a wrong password.
	_, _, err = svc.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "longenough"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
