package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks register and login requests before any lookup.
	validator validators.Validator

	// ids generates identifiers of new users.
	ids *utils.UUIDGenerator

	// passwordHashCost is the bcrypt cost used at registration time.
	passwordHashCost int

	// tokens signs and verifies access tokens with the configured key,
	// issuer and lifetime.
	tokens *utils.JWTManager

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		validator:        validators.NewUserValidator(),
		ids:              utils.NewUUIDGenerator(),
		passwordHashCost: cfg.PasswordHashCost,
		tokens:           utils.NewJWTManager(cfg.TokenIssuer, cfg.TokenSignKey, cfg.TokenDuration),
		logger:           logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates email, username and password in that order, refuses an email
// that is already registered, hashes the password with bcrypt and persists
// the user with a fresh UUIDv7 id.
//
// Returns the persisted user or:
//   - a validators error naming the first missing field.
//   - store.ErrUserAlreadyExists if the email or username is taken.
//   - a wrapped storage error if a repository call fails.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "authService.RegisterUser").Msg("invalid register request")
		return models.User{}, err
	}

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Info().Str("func", "authService.RegisterUser").Str("username", req.Username).Msg("email is already registered")
		return models.User{}, store.ErrUserAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "authService.RegisterUser").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := utils.HashPassword(req.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:        a.ids.Generate(),
		FullName:  req.FullName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  hash,
		CreatedOn: now(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both Username and Password are present, looks up the
// account by username and compares the password with the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - a validators error naming the first missing field.
//   - a wrapped store.ErrNoUserWasFound if the username is unknown.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "authService.Login").Msg("invalid login request")
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = utils.ComparePassword(foundUser.Password, req.Password); err != nil {
		log.Warn().
			Str("func", "authService.Login").
			Str("id", foundUser.ID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token carries the user id as "sub" and expires after the configured
// token duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong signing method,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := a.tokens.Parse(tokenString)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// now returns the current UTC time truncated to microseconds, the finest
// precision PostgreSQL keeps.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
