package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(nopLogger{})
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "secret", domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, domain.RoleUser, user.Role)
	// Хэш пароля не равен самому паролю
	assert.NotEqual(t, "secret", user.PasswordHash)

	logged, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	_, err = svc.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "ghost", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(nopLogger{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "   ", "secret", domain.RoleUser)
	require.ErrorIs(t, err, ErrInvalidUsername)

	_, err = svc.Register(ctx, "alice", "secret", domain.Role("SUPERVISOR"))
	require.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.Register(ctx, "alice", "secret", domain.RoleUser)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other", domain.RoleUser)
	require.ErrorIs(t, err, ErrUserExists)
}

func TestBookingHistory(t *testing.T) {
	svc := NewService(nopLogger{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret", domain.RoleUser)
	require.NoError(t, err)

	require.NoError(t, svc.AppendBookingID(ctx, "alice", 3))
	require.NoError(t, svc.AppendBookingID(ctx, "alice", 5))

	ids, err := svc.BookingIDs(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5}, ids)

	require.ErrorIs(t, svc.AppendBookingID(ctx, "ghost", 1), ErrUserNotFound)
	_, err = svc.BookingIDs(ctx, "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestEnsureDefaultAdminIdempotent(t *testing.T) {
	svc := NewService(nopLogger{})
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaultAdmin(ctx))
	require.NoError(t, svc.EnsureDefaultAdmin(ctx))

	admin, err := svc.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	_, err = svc.Login(ctx, "admin", "admin")
	require.NoError(t, err)
}
