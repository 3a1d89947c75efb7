package parking

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SlotRegistry интерфейс реестра парковочных слотов
type SlotRegistry interface {
	GetByID(id int) (*domain.Slot, error)
	Assign(slotID int, bookingID int) error
	Release(slotID int) error
	List() []*domain.Slot
	FirstFree() (*domain.Slot, error)
}

// BookingLedger интерфейс журнала бронирований
type BookingLedger interface {
	Create(username string, slotID int, now int64) *domain.Booking
	GetByID(id int) (*domain.Booking, error)
	List() []*domain.Booking
	Replace(loaded []*domain.Booking)
}

// FileStore интерфейс адаптера персистентности журнала
type FileStore interface {
	Save(bookings []*domain.Booking) error
	Load() ([]*domain.Booking, error)
	Path() string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	NowMillis() int64
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// NowMillis возвращает текущее время в миллисекундах Unix
func (RealTimeProvider) NowMillis() int64 {
	return time.Now().UnixMilli()
}
