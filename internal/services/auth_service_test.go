package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clinicproject/vetclinic-backend/internal/config"
	"github.com/clinicproject/vetclinic-backend/internal/dto"
	"github.com/clinicproject/vetclinic-backend/internal/models"
	"github.com/clinicproject/vetclinic-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "this-is-a-test-secret-with-32-bytes!"

func setupTestAuthService(t *testing.T, user *models.User) *AuthService {
	t.Helper()
	repo := &mockUserRepository{
		findByUsernameFunc: func(_ context.Context, username string) (*models.User, error) {
			if user != nil && username == user.Username {
				return user, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	return NewAuthService(repo, &config.Config{JWTSecret: testSecret, JWTAccessExpiry: time.Hour})
}

func staffUser(t *testing.T, active bool) *models.User {
	t.Helper()
	hash, err := hashPassword("Secret@123")
	if err != nil {
		t.Fatal(err)
	}
	return &models.User{ID: uuid.New(), Username: "ana", Role: models.RoleVeterinarian, Password: hash, Active: active}
}

func TestLogin_Success(t *testing.T) {
	user := staffUser(t, true)
	svc := setupTestAuthService(t, user)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "ana", Password: "Secret@123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.ExpiresIn != 3600 || resp.TokenType != "Bearer" {
		t.Errorf("response = %+v", resp)
	}

	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) { return []byte(testSecret), nil })
	if err != nil || !token.Valid {
		t.Fatalf("token should verify: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["sub"] != user.ID.String() || claims["role"] != "VETERINARIO" {
		t.Errorf("claims = %v", claims)
	}
}

func TestLogin_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		user     *models.User
		username string
		password string
	}{
		{"unknown user", nil, "ghost", "Secret@123"},
		{"wrong password", staffUser(t, true), "ana", "Wrong@123"},
		{"inactive account", staffUser(t, false), "ana", "Secret@123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := setupTestAuthService(t, tt.user)
			_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: tt.username, Password: tt.password})
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want %v", err, ErrInvalidCredentials)
			}
		})
	}
}
