package get_available_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeEngine struct {
	sweeps int
	slots  []*domain.Slot
}

func (f *fakeEngine) ProcessExpirations(ctx context.Context) int {
	f.sweeps++
	return 0
}

func (f *fakeEngine) Slots(ctx context.Context) []*domain.Slot {
	return f.slots
}

func TestExecuteCountsFreeSlots(t *testing.T) {
	engine := &fakeEngine{slots: []*domain.Slot{
		{ID: 1, Type: domain.SlotCompact},
		{ID: 2, Type: domain.SlotRegular, Occupied: true, CurrentBookingID: ptr.Ptr(7)},
		{ID: 3, Type: domain.SlotLarge},
	}}
	uc := NewUseCase(engine, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.FreeCount)
	require.Len(t, resp.Slots, 3)
	assert.True(t, resp.Slots[1].Occupied)
	require.NotNil(t, resp.Slots[1].CurrentBookingID)
	assert.Equal(t, 7, *resp.Slots[1].CurrentBookingID)

	// Снимку предшествует sweep просроченных бронирований
	assert.Equal(t, 1, engine.sweeps)
}

func TestExecuteEmptyRegistry(t *testing.T) {
	uc := NewUseCase(&fakeEngine{}, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.Equal(t, 0, resp.FreeCount)
	assert.Empty(t, resp.Slots)
}
