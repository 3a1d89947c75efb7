package register_staff

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type UserService interface {
	Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
