package bookingfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(filepath.Join(t.TempDir(), "bookings.txt"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	in := []*domain.Booking{
		{ID: 1, Username: "alice", SlotID: 1, Status: domain.StatusPending, CreationTime: 1_700_000_000_000},
		{ID: 2, Username: "bob", SlotID: 3, Status: domain.StatusCompleted, Amount: ptr.Ptr(21.0),
			CreationTime: 1_700_000_000_000, EntryTime: 1_700_000_005_000, ExitTime: 1_700_000_130_000},
		{ID: 3, Username: "carol", SlotID: 2, Status: domain.StatusCancelled, CreationTime: 1_700_000_000_000},
	}

	require.NoError(t, repo.Save(in))

	out, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, out, 3)

	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Username, out[i].Username)
		assert.Equal(t, in[i].SlotID, out[i].SlotID)
		assert.Equal(t, in[i].Status, out[i].Status)
		assert.Equal(t, in[i].CreationTime, out[i].CreationTime)
		assert.Equal(t, in[i].EntryTime, out[i].EntryTime)
		assert.Equal(t, in[i].ExitTime, out[i].ExitTime)
	}
	require.NotNil(t, out[1].Amount)
	assert.InDelta(t, 21.0, *out[1].Amount, 1e-9)
	assert.Nil(t, out[0].Amount)
}

func TestLoadMissingFileCreatesEmpty(t *testing.T) {
	repo := newTestRepo(t)

	out, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, out)

	// Файл должен появиться на диске
	_, err = os.Stat(repo.Path())
	require.NoError(t, err)
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	repo := newTestRepo(t)

	content := "bookingId , username, slotId, status, amount, creationTime, entryTime, exitTime\n" +
		// валидная строка
		"1, alice, 1, PENDING, , 1000, 0, 0\n" +
		// мало колонок
		"2, bob, 2, ACTIVE\n" +
		// непарсящийся slotId
		"3, carol, oops, PENDING, , 1000, 0, 0\n" +
		// непарсящийся id
		"xx, dave, 2, PENDING, , 1000, 0, 0\n" +
		// непарсящийся amount деградирует до nil, строка остается
		"5, erin, 2, COMPLETED, abc, 1000, 2000, 3000\n" +
		// непарсящиеся таймстемпы деградируют до нуля
		"6, frank, 3, CANCELLED, , oops, oops, oops\n" +
		"\n"

	require.NoError(t, os.WriteFile(repo.Path(), []byte(content), 0o644))

	out, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, 1, out[0].ID)

	assert.Equal(t, 5, out[1].ID)
	assert.Nil(t, out[1].Amount)
	assert.Equal(t, int64(1000), out[1].CreationTime)

	assert.Equal(t, 6, out[2].ID)
	assert.Equal(t, int64(0), out[2].CreationTime)
	assert.Equal(t, int64(0), out[2].EntryTime)
	assert.Equal(t, int64(0), out[2].ExitTime)
}

func TestLoadEmptyAmountAndIDStayUnset(t *testing.T) {
	repo := newTestRepo(t)

	content := "bookingId , username, slotId, status, amount, creationTime, entryTime, exitTime\n" +
		", ghost, 4, CANCELLED, , 1000, 0, 0\n"

	require.NoError(t, os.WriteFile(repo.Path(), []byte(content), 0o644))

	out, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 0, out[0].ID)
	assert.Nil(t, out[0].Amount)
}

func TestSaveOverwritesPreviousContent(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Save([]*domain.Booking{
		{ID: 1, Username: "alice", SlotID: 1, Status: domain.StatusPending, CreationTime: 1000},
		{ID: 2, Username: "bob", SlotID: 2, Status: domain.StatusPending, CreationTime: 1000},
	}))
	require.NoError(t, repo.Save([]*domain.Booking{
		{ID: 3, Username: "carol", SlotID: 3, Status: domain.StatusPending, CreationTime: 2000},
	}))

	out, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].ID)
}
