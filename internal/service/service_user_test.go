package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()

	repo := mock.NewMockUserRepository(gomock.NewController(t))
	return NewUserService(repo, logger.Nop()), repo
}

func TestUserService_GetUser(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, "u-1").Return(models.User{ID: "u-1", Username: "alice"}, nil)

	user, err := svc.GetUser(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, "u-1").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetUser(ctx, "u-1")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestUserService_Logout_DeletesAccount(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().FindUserByID(ctx, "u-1").Return(models.User{ID: "u-1"}, nil),
		repo.EXPECT().DeleteUser(ctx, "u-1").Return(nil),
	)

	require.NoError(t, svc.Logout(ctx, "u-1", "u-1"))
}

func TestUserService_Logout_ForeignAccount(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	// no repository call is expected
	err := svc.Logout(context.Background(), "u-1", "u-2")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestUserService_Logout_UserMissing(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, "u-1").Return(models.User{}, store.ErrNoUserWasFound)

	assert.ErrorIs(t, svc.Logout(ctx, "u-1", "u-1"), store.ErrNoUserWasFound)
}

func TestUserService_Logout_DeleteFails(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, "u-1").Return(models.User{ID: "u-1"}, nil)
	repo.EXPECT().DeleteUser(ctx, "u-1").Return(store.ErrExecutingStatement)

	assert.ErrorIs(t, svc.Logout(ctx, "u-1", "u-1"), store.ErrExecutingStatement)
}
