package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (u *userService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.GetUser").Str("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// Logout deletes the account of the caller. A userID other than callerID is
// reported as store.ErrNoUserWasFound so that foreign accounts are
// indistinguishable from missing ones.
func (u *userService) Logout(ctx context.Context, callerID, userID string) error {
	log := logger.FromContext(ctx)

	if callerID != userID {
		log.Warn().
			Str("func", "userService.Logout").
			Str("caller_id", callerID).
			Str("user_id", userID).
			Msg("attempt to log out another user")
		return store.ErrNoUserWasFound
	}

	if _, err := u.userRepository.FindUserByID(ctx, userID); err != nil {
		log.Err(err).Str("func", "userService.Logout").Str("user_id", userID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("func", "userService.Logout").Str("user_id", userID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}
