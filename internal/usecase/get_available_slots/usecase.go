package get_available_slots

import (
	"context"
)

// UseCase use case получения снимка доступности парковки
type UseCase struct {
	engine ParkingEngine
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(engine ParkingEngine, logger Logger) *UseCase {
	return &UseCase{
		engine: engine,
		logger: logger,
	}
}

// Execute возвращает состояние всех слотов.
// Перед снимком запускает sweep просроченных бронирований: отображаемая
// доступность должна учитывать только живые резервирования.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	if expired := uc.engine.ProcessExpirations(ctx); expired > 0 {
		uc.logger.Info("GetAvailableSlots: expiration sweep cancelled %d stale bookings", expired)
	}

	resp := FromDomainSlots(uc.engine.Slots(ctx))
	uc.logger.Info("GetAvailableSlots: %d/%d slots free", resp.FreeCount, resp.Total)
	return resp, nil
}
