package reserve_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/parking"
	"github.com/m04kA/SMC-ParkingService/internal/service/users"
)

// UseCase use case резервирования парковочного слота
type UseCase struct {
	engine    ParkingEngine
	directory UserDirectory
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(engine ParkingEngine, directory UserDirectory, logger Logger) *UseCase {
	return &UseCase{
		engine:    engine,
		directory: directory,
		logger:    logger,
	}
}

// Execute выполняет резервирование слота.
// Перед проверкой доступности запускает sweep просроченных бронирований,
// чтобы освободившиеся слоты были доступны для выбора.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveSlot: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ReserveSlot: user=%s, slot=%v", req.Username, slotIDForLog(req))

	// 2. Пользователь должен быть зарегистрирован
	if _, err := uc.directory.FindByUsername(ctx, req.Username); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			uc.logger.Warn("ReserveSlot: user %s not found", req.Username)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("ReserveSlot: failed to look up user %s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: failed to look up user: %v", ErrInternal, err)
	}

	// 3. Отменяем просроченные бронирования перед проверкой доступности
	if expired := uc.engine.ProcessExpirations(ctx); expired > 0 {
		uc.logger.Info("ReserveSlot: expiration sweep cancelled %d stale bookings", expired)
	}

	// 4. Резервируем конкретный слот либо первый свободный
	var (
		booking *domain.Booking
		err     error
	)
	if req.SlotID != nil {
		booking, err = uc.engine.Reserve(ctx, req.Username, *req.SlotID)
	} else {
		booking, err = uc.engine.ReserveAny(ctx, req.Username)
	}
	if err != nil {
		switch {
		case errors.Is(err, parking.ErrSlotNotAvailable):
			uc.logger.Warn("ReserveSlot: slot not available for user=%s: %v", req.Username, err)
			return nil, fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
		case errors.Is(err, parking.ErrInvalidUser):
			uc.logger.Warn("ReserveSlot: engine rejected user identity %q", req.Username)
			return nil, ErrInvalidUser
		default:
			uc.logger.Error("ReserveSlot: engine failure for user=%s: %v", req.Username, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 5. Привязываем бронирование к истории пользователя
	if err := uc.directory.AppendBookingID(ctx, req.Username, booking.ID); err != nil {
		// Бронирование уже создано и слот назначен; история лишь
		// отображение, поэтому ошибку фиксируем, но не откатываемся
		uc.logger.Error("ReserveSlot: failed to link booking id=%d to user %s history: %v",
			booking.ID, req.Username, err)
	}

	uc.logger.Info("ReserveSlot: booking id=%d created for user=%s, slot=%d",
		booking.ID, req.Username, booking.SlotID)
	return FromDomainBooking(booking), nil
}

func slotIDForLog(req *Request) interface{} {
	if req.SlotID == nil {
		return "any"
	}
	return *req.SlotID
}
