package load_bookings

import (
	"context"
)

type ParkingEngine interface {
	LoadBookings(ctx context.Context) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
