package reserve_slot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/parking"
	"github.com/m04kA/SMC-ParkingService/internal/service/users"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeEngine struct {
	sweeps      int
	reserveErr  error
	booking     *domain.Booking
	lastSlotID  *int
	lastUsrName string
}

func (f *fakeEngine) ProcessExpirations(ctx context.Context) int {
	f.sweeps++
	return 0
}

func (f *fakeEngine) Reserve(ctx context.Context, username string, slotID int) (*domain.Booking, error) {
	f.lastUsrName = username
	f.lastSlotID = &slotID
	if f.reserveErr != nil {
		return nil, f.reserveErr
	}
	return f.booking, nil
}

func (f *fakeEngine) ReserveAny(ctx context.Context, username string) (*domain.Booking, error) {
	f.lastUsrName = username
	f.lastSlotID = nil
	if f.reserveErr != nil {
		return nil, f.reserveErr
	}
	return f.booking, nil
}

type fakeDirectory struct {
	known     map[string]bool
	appended  []int
	appendErr error
}

func (f *fakeDirectory) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if !f.known[username] {
		return nil, users.ErrUserNotFound
	}
	return &domain.User{Username: username, Role: domain.RoleUser}, nil
}

func (f *fakeDirectory) AppendBookingID(ctx context.Context, username string, bookingID int) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, bookingID)
	return nil
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:           1,
		Username:     "alice",
		SlotID:       2,
		Status:       domain.StatusPending,
		CreationTime: 1_700_000_000_000,
	}
}

func TestExecuteReservesSpecificSlot(t *testing.T) {
	engine := &fakeEngine{booking: pendingBooking()}
	directory := &fakeDirectory{known: map[string]bool{"alice": true}}
	uc := NewUseCase(engine, directory, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Username: "alice", SlotID: ptr.Ptr(2)})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, 2, resp.SlotID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	// Sweep отрабатывает до резервирования, история пополняется
	assert.Equal(t, 1, engine.sweeps)
	require.NotNil(t, engine.lastSlotID)
	assert.Equal(t, 2, *engine.lastSlotID)
	assert.Equal(t, []int{1}, directory.appended)
}

func TestExecuteReservesAnySlotWhenIDOmitted(t *testing.T) {
	engine := &fakeEngine{booking: pendingBooking()}
	directory := &fakeDirectory{known: map[string]bool{"alice": true}}
	uc := NewUseCase(engine, directory, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Username: "alice"})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.ID)
	assert.Nil(t, engine.lastSlotID)
}

func TestExecuteValidation(t *testing.T) {
	engine := &fakeEngine{booking: pendingBooking()}
	directory := &fakeDirectory{known: map[string]bool{"alice": true}}
	uc := NewUseCase(engine, directory, nopLogger{})

	_, err := uc.Execute(context.Background(), nil)
	require.ErrorIs(t, err, ErrInvalidUser)

	_, err = uc.Execute(context.Background(), &Request{Username: "  "})
	require.ErrorIs(t, err, ErrInvalidUser)

	_, err = uc.Execute(context.Background(), &Request{Username: "alice", SlotID: ptr.Ptr(0)})
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	// До движка дело не дошло
	assert.Equal(t, 0, engine.sweeps)
}

func TestExecuteUnknownUser(t *testing.T) {
	engine := &fakeEngine{booking: pendingBooking()}
	directory := &fakeDirectory{known: map[string]bool{}}
	uc := NewUseCase(engine, directory, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Username: "ghost"})
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, 0, engine.sweeps)
}

func TestExecuteMapsEngineErrors(t *testing.T) {
	directory := &fakeDirectory{known: map[string]bool{"alice": true}}

	engine := &fakeEngine{reserveErr: parking.ErrSlotNotAvailable}
	uc := NewUseCase(engine, directory, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{Username: "alice", SlotID: ptr.Ptr(3)})
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	engine = &fakeEngine{reserveErr: parking.ErrInvalidUser}
	uc = NewUseCase(engine, directory, nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{Username: "alice"})
	require.ErrorIs(t, err, ErrInvalidUser)
}

func TestExecuteHistoryFailureDoesNotRollBack(t *testing.T) {
	engine := &fakeEngine{booking: pendingBooking()}
	directory := &fakeDirectory{
		known:     map[string]bool{"alice": true},
		appendErr: users.ErrUserNotFound,
	}
	uc := NewUseCase(engine, directory, nopLogger{})

	// Бронирование создано, сбой записи истории не превращается в ошибку
	resp, err := uc.Execute(context.Background(), &Request{Username: "alice", SlotID: ptr.Ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ID)
}
