package pay_booking

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type ParkingEngine interface {
	Pay(ctx context.Context, bookingID int, amount float64) error
	GetBooking(ctx context.Context, bookingID int) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
