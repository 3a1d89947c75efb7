package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ParkingEngine интерфейс движка жизненного цикла бронирований
type ParkingEngine interface {
	ProcessExpirations(ctx context.Context) int
	Slots(ctx context.Context) []*domain.Slot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
