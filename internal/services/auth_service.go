package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"pizzeria/internal/models"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("email and password are required")

type LoginInput struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

type AuthService interface {
	Login(in LoginInput) (string, models.User, error)
	Logout(token string) error
	Session(token string) (models.User, error)
}

type authService struct {
	sessions   SessionStore
	adminEmail string
	adminHash  []byte
	sessionTTL time.Duration
}

func NewAuthService(sessions SessionStore, adminEmail, adminPassword string, sessionTTL time.Duration) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &authService{
		sessions:   sessions,
		adminEmail: adminEmail,
		adminHash:  hash,
		sessionTTL: sessionTTL,
	}, nil
}

// Login opens a session for any non-empty credentials. The admin flag is set
// only when the email and password match the single configured administrator
// identity; everyone else is a customer.
func (s *authService) Login(in LoginInput) (string, models.User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return "", models.User{}, ErrInvalidCredentials
	}

	isAdmin := email == s.adminEmail &&
		bcrypt.CompareHashAndPassword(s.adminHash, []byte(in.Password)) == nil

	name := strings.TrimSpace(in.Name)
	if name == "" {
		if isAdmin {
			name = "Administrator"
		} else {
			name = "Guest"
		}
	}

	user := models.User{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(in.Phone),
		IsAdmin: isAdmin,
	}

	token, err := generateToken()
	if err != nil {
		return "", models.User{}, err
	}
	if err := s.sessions.CreateSession(token, user, s.sessionTTL); err != nil {
		return "", models.User{}, fmt.Errorf("failed to create session: %w", err)
	}

	return token, user, nil
}

// Logout ends the session. The session's cart dies with it.
func (s *authService) Logout(token string) error {
	if err := s.sessions.ClearCart(token); err != nil {
		return err
	}
	return s.sessions.DeleteSession(token)
}

func (s *authService) Session(token string) (models.User, error) {
	return s.sessions.GetSession(token)
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
