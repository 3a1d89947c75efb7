package bookings

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Ledger in-memory журнал бронирований.
// Журнал владеет всеми записями Booking; id назначаются монотонно
// начиная с 1 и никогда не переиспользуются, в том числе после отмены.
//
// Журнал не синхронизирован: все мутации сериализует движок
// (internal/service/parking) единым мьютексом на пару реестр+журнал.
type Ledger struct {
	bookings []*domain.Booking
	nextID   int
}

// NewLedger создает пустой журнал
func NewLedger() *Ledger {
	return &Ledger{
		bookings: make([]*domain.Booking, 0, 32),
		nextID:   1,
	}
}

// Create создает новое PENDING-бронирование с очередным id
func (l *Ledger) Create(username string, slotID int, now int64) *domain.Booking {
	booking := &domain.Booking{
		ID:           l.nextID,
		Username:     username,
		SlotID:       slotID,
		Status:       domain.StatusPending,
		CreationTime: now,
	}
	l.nextID++
	l.bookings = append(l.bookings, booking)
	return booking
}

// GetByID возвращает бронирование по id
func (l *Ledger) GetByID(id int) (*domain.Booking, error) {
	for _, b := range l.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, ErrBookingNotFound
}

// List возвращает все бронирования в порядке создания
func (l *Ledger) List() []*domain.Booking {
	out := make([]*domain.Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

// Replace заменяет содержимое журнала загруженными записями.
// nextID пересчитывается как max(id) + 1.
func (l *Ledger) Replace(loaded []*domain.Booking) {
	l.bookings = make([]*domain.Booking, 0, len(loaded))
	maxID := 0
	for _, b := range loaded {
		if b == nil {
			continue
		}
		l.bookings = append(l.bookings, b)
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	l.nextID = maxID + 1
}

// NextID возвращает id, который получит следующее бронирование
func (l *Ledger) NextID() int {
	return l.nextID
}

// Count возвращает количество записей в журнале
func (l *Ledger) Count() int {
	return len(l.bookings)
}
