package reserve_slot

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ParkingEngine интерфейс движка жизненного цикла бронирований
type ParkingEngine interface {
	ProcessExpirations(ctx context.Context) int
	Reserve(ctx context.Context, username string, slotID int) (*domain.Booking, error)
	ReserveAny(ctx context.Context, username string) (*domain.Booking, error)
}

// UserDirectory интерфейс коллаборатора пользователей.
// Ядро не владеет историей бронирований: после успешного
// резервирования оно лишь просит добавить id в список пользователя.
type UserDirectory interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	AppendBookingID(ctx context.Context, username string, bookingID int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
