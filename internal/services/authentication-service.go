package services

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"
)

var wrongCredentialsError = &ErrorWithCode{
	Message: "Invalid email or password",
	Code:    401,
}

// Register creates the user and issues their first token pair. The access
// token's subject is the user's email.
func (s *Service) Register(ctx context.Context, email, password, firstName, lastName string) (*models.User, *models.Token, error) {
	exists, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	if exists != nil {
		return nil, nil, conflict("Email already registered")
	}

	hashed, err := s.hashPassword(password)
	if err != nil {
		return nil, nil, err
	}

	toInsert := &models.User{
		Email:        email,
		HashPassword: hashed,
		FirstName:    firstName,
		LastName:     lastName,
	}

	if err := s.users.Insert(ctx, toInsert); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, nil, conflict("Email already registered")
		}
		return nil, nil, err
	}

	pair, err := s.IssueToken(ctx, toInsert.ID, jwt.MapClaims{"sub": toInsert.Email})
	if err != nil {
		return nil, nil, err
	}

	return toInsert, pair, nil
}

// Login verifies the password and issues a fresh pair. Earlier pairs stay
// valid, so a user may hold several concurrent sessions.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, *models.Token, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	if user == nil {
		return nil, nil, notFound("User not found")
	}

	if err := s.checkPassword(password, user); err != nil {
		return nil, nil, wrongCredentialsError
	}

	pair, err := s.IssueToken(ctx, user.ID, jwt.MapClaims{"sub": user.Email})
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// CurrentUser resolves a bearer token to its owning user for the auth
// middleware.
func (s *Service) CurrentUser(ctx context.Context, tokenStr string) (*models.User, error) {
	claims, err := s.ValidateAccessToken(ctx, tokenStr)
	if err != nil {
		return nil, err
	}

	email, ok := claims["sub"].(string)
	if !ok {
		return nil, unauthorized("Invalid token")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, unauthorized("Invalid token")
	}

	return user, nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *Service) checkPassword(password string, user *models.User) error {
	return bcrypt.CompareHashAndPassword([]byte(user.HashPassword), []byte(password))
}
