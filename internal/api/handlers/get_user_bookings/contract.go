package get_user_bookings

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type ParkingEngine interface {
	GetBookings(ctx context.Context, ids []int) []*domain.Booking
}

// UserDirectory коллаборатор, владеющий историей бронирований пользователя
type UserDirectory interface {
	BookingIDs(ctx context.Context, username string) ([]int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
