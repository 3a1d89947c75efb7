package save_bookings

import (
	"context"
)

type ParkingEngine interface {
	SaveBookings(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
