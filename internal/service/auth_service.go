package service

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/traitlab/darkmirror/internal/apperr"
	"github.com/traitlab/darkmirror/internal/dto"
	"github.com/traitlab/darkmirror/internal/model"
	"github.com/traitlab/darkmirror/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(req dto.RegisterRequestDTO) (*dto.AuthResponseDTO, error)
	Login(req dto.LoginRequestDTO) (*dto.AuthResponseDTO, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

// Register stores a new user with a bcrypt hash of the password (plaintext is
// never persisted) and issues a session token bound to the new id.
func (s *authService) Register(req dto.RegisterRequestDTO) (*dto.AuthResponseDTO, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("Register: email lookup failed")
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if existing != nil {
		return nil, apperr.DuplicateEmail(fmt.Sprintf("email %s is already registered", email))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := model.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", email).Msg("Register: failed to create user")
		return nil, apperr.PersistenceError("failed to create user")
	}

	log.Info().Uint("userID", user.ID).Str("email", email).Msg("Registered new user")
	return s.issueToken(&user)
}

// Login verifies the password hash and issues a fresh session token,
// identical in shape to registration's.
func (s *authService) Login(req dto.LoginRequestDTO) (*dto.AuthResponseDTO, error) {
	email := normalizeEmail(req.Email)

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("Login: email lookup failed")
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if user == nil {
		return nil, apperr.UserNotFound(fmt.Sprintf("no account for email %s", email))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.InvalidCredentials("wrong password")
	}
	return s.issueToken(user)
}

func (s *authService) issueToken(user *model.User) (*dto.AuthResponseDTO, error) {
	token, expiresIn, err := s.tokens.Sign(user.ID, user.IsAdmin)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to sign session token")
		return nil, fmt.Errorf("error signing token: %w", err)
	}
	return &dto.AuthResponseDTO{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		ExpiresIn: expiresIn,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
