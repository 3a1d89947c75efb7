package mark_exit

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type ParkingEngine interface {
	MarkExit(ctx context.Context, bookingID int) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
