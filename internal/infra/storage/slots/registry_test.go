package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func TestAddAssignsSequentialIDs(t *testing.T) {
	r := NewRegistry()
	r.AddAll(domain.SlotCompact, domain.SlotRegular, domain.SlotLarge)

	assert.Equal(t, 3, r.Count())
	for i := 1; i <= 3; i++ {
		slot, err := r.GetByID(i)
		require.NoError(t, err)
		assert.Equal(t, i, slot.ID)
		assert.True(t, slot.IsFree())
	}
}

func TestGetByIDUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.GetByID(1)
	require.ErrorIs(t, err, ErrSlotNotFound)
}

func TestAssignAndRelease(t *testing.T) {
	r := NewRegistry()
	r.Add(domain.SlotRegular)

	require.NoError(t, r.Assign(1, 7))

	slot, err := r.GetByID(1)
	require.NoError(t, err)
	assert.True(t, slot.Occupied)
	require.NotNil(t, slot.CurrentBookingID)
	assert.Equal(t, 7, *slot.CurrentBookingID)

	require.NoError(t, r.Release(1))
	assert.False(t, slot.Occupied)
	assert.Nil(t, slot.CurrentBookingID)

	// Release идемпотентна
	require.NoError(t, r.Release(1))
}

func TestFirstFreeFollowsCreationOrder(t *testing.T) {
	r := NewRegistry()
	r.AddAll(domain.SlotCompact, domain.SlotRegular)

	slot, err := r.FirstFree()
	require.NoError(t, err)
	assert.Equal(t, 1, slot.ID)

	require.NoError(t, r.Assign(1, 1))

	slot, err = r.FirstFree()
	require.NoError(t, err)
	assert.Equal(t, 2, slot.ID)

	require.NoError(t, r.Assign(2, 2))

	_, err = r.FirstFree()
	require.ErrorIs(t, err, ErrSlotNotFound)
}

func TestListReturnsClones(t *testing.T) {
	r := NewRegistry()
	r.Add(domain.SlotLarge)

	list := r.List()
	require.Len(t, list, 1)

	// Мутация копии не затрагивает реестр
	list[0].Assign(99)

	slot, err := r.GetByID(1)
	require.NoError(t, err)
	assert.True(t, slot.IsFree())
}
