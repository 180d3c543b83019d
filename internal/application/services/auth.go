package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"listings-media-api/internal/application/ports"
	"listings-media-api/internal/domain/agent"
	"listings-media-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(jwtService *jwt.Service) ports.Auth {
	return &AuthService{jwtService: jwtService}
}

func (as *AuthService) GenerateToken(a *agent.Agent, requestPassword string) (string, error) {
	if a.PasswordHash == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*a.PasswordHash), []byte(requestPassword)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(a.UUID.String(), a.Role, time.Hour)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}

func (as *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
