package services

import (
	"testing"
	"time"

	"pizzeria/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@pizzasjarochos.com"
	adminPassword = "admin123"
)

func authFixture(t *testing.T) (AuthService, *memorySessions) {
	t.Helper()
	sessions := newMemorySessions()
	svc, err := NewAuthService(sessions, adminEmail, adminPassword, time.Hour)
	require.NoError(t, err)
	return svc, sessions
}

func TestLoginAdminDetection(t *testing.T) {
	svc, _ := authFixture(t)

	tests := []struct {
		name      string
		email     string
		password  string
		wantAdmin bool
	}{
		{"matching admin credentials", adminEmail, adminPassword, true},
		{"admin email wrong password", adminEmail, "nope", false},
		{"customer credentials", "juan@example.com", "whatever", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token, user, err := svc.Login(LoginInput{Email: tc.email, Password: tc.password})
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, tc.wantAdmin, user.IsAdmin)
		})
	}
}

func TestLoginDefaultsName(t *testing.T) {
	svc, _ := authFixture(t)

	_, user, err := svc.Login(LoginInput{Email: adminEmail, Password: adminPassword})
	require.NoError(t, err)
	assert.Equal(t, "Administrator", user.Name)

	_, user, err = svc.Login(LoginInput{Email: "juan@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Guest", user.Name)

	_, user, err = svc.Login(LoginInput{Name: "Juan", Email: "juan@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Juan", user.Name)
}

func TestLoginRejectsMissingCredentials(t *testing.T) {
	svc, _ := authFixture(t)

	_, _, err := svc.Login(LoginInput{Email: " ", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(LoginInput{Email: "juan@example.com"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutEndsSessionAndCart(t *testing.T) {
	svc, sessions := authFixture(t)

	token, _, err := svc.Login(LoginInput{Email: "juan@example.com", Password: "pw"})
	require.NoError(t, err)
	require.NoError(t, sessions.SaveCart(token, models.Cart{Lines: []models.CartLine{{ItemID: 1, Quantity: 1}}}, time.Hour))

	require.NoError(t, svc.Logout(token))

	_, err = svc.Session(token)
	assert.Error(t, err)

	cart, err := sessions.LoadCart(token)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty(), "logout clears the session's cart")
}

func TestSessionTokensAreUnique(t *testing.T) {
	svc, _ := authFixture(t)

	first, _, err := svc.Login(LoginInput{Email: "a@example.com", Password: "pw"})
	require.NoError(t, err)
	second, _, err := svc.Login(LoginInput{Email: "b@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
