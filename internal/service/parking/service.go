package parking

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
)

// Service движок жизненного цикла и биллинга бронирований.
// Владеет парой реестр+журнал и сериализует все их мутации единым
// мьютексом: назначение/освобождение слота и смена статуса бронирования
// не атомарны по отдельности и не должны перемежаться.
type Service struct {
	mu sync.Mutex

	registry SlotRegistry
	ledger   BookingLedger
	files    FileStore
	tariff   domain.Tariff

	timeProvider TimeProvider
	logger       Logger
	metrics      *metrics.Metrics
}

// NewService создает движок с указанным тарифом.
// metrics может быть nil, если сбор метрик выключен.
func NewService(
	registry SlotRegistry,
	ledger BookingLedger,
	files FileStore,
	tariff domain.Tariff,
	logger Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		registry:     registry,
		ledger:       ledger,
		files:        files,
		tariff:       tariff,
		timeProvider: RealTimeProvider{},
		logger:       logger,
		metrics:      m,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Reserve создает PENDING-бронирование на конкретный слот.
// Слот должен существовать и быть свободным.
func (s *Service) Reserve(ctx context.Context, username string, slotID int) (*domain.Booking, error) {
	if strings.TrimSpace(username) == "" {
		s.logger.Warn("Reserve: missing user identity")
		return nil, ErrInvalidUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slot, err := s.registry.GetByID(slotID)
	if err != nil {
		s.logger.Warn("Reserve: slot id=%d does not exist", slotID)
		return nil, fmt.Errorf("%w: slot id=%d does not exist", ErrSlotNotAvailable, slotID)
	}
	if slot.Occupied {
		s.logger.Warn("Reserve: slot id=%d is already occupied", slotID)
		return nil, fmt.Errorf("%w: slot id=%d is already occupied", ErrSlotNotAvailable, slotID)
	}

	booking := s.createBooking(username, slot)
	s.logger.Info("Reserve: booking id=%d created for user=%s, slot=%d", booking.ID, username, slotID)
	return booking.Clone(), nil
}

// ReserveAny создает PENDING-бронирование на первый свободный слот
// в порядке создания слотов.
func (s *Service) ReserveAny(ctx context.Context, username string) (*domain.Booking, error) {
	if strings.TrimSpace(username) == "" {
		s.logger.Warn("ReserveAny: missing user identity")
		return nil, ErrInvalidUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slot, err := s.registry.FirstFree()
	if err != nil {
		s.logger.Warn("ReserveAny: no free slot available for user=%s", username)
		return nil, fmt.Errorf("%w: no free slot available", ErrSlotNotAvailable)
	}

	booking := s.createBooking(username, slot)
	s.logger.Info("ReserveAny: booking id=%d created for user=%s, slot=%d", booking.ID, username, slot.ID)
	return booking.Clone(), nil
}

// createBooking создает запись журнала и назначает слот.
// Вызывается под мьютексом.
func (s *Service) createBooking(username string, slot *domain.Slot) *domain.Booking {
	booking := s.ledger.Create(username, slot.ID, s.timeProvider.NowMillis())
	slot.Assign(booking.ID)
	s.metrics.IncBookingsCreated()
	return booking
}

// MarkEntry фиксирует въезд: PENDING -> ACTIVE, entryTime = now.
// Если слот бронирования отсутствует в реестре, переход откатывается.
// Если слот существует, но не помечен занятым (рассинхронизация),
// движок переназначает его вместо отказа.
func (s *Service) MarkEntry(ctx context.Context, bookingID int) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.ledger.GetByID(bookingID)
	if err != nil {
		s.logger.Warn("MarkEntry: booking id=%d not found", bookingID)
		return nil, ErrBookingNotFound
	}

	if booking.Status != domain.StatusPending {
		s.logger.Warn("MarkEntry: booking id=%d has status %s, only PENDING can be marked as entry",
			bookingID, booking.Status)
		return nil, fmt.Errorf("%w: booking id=%d has status %s, want PENDING",
			ErrWrongStatus, bookingID, booking.Status)
	}

	booking.Status = domain.StatusActive
	booking.EntryTime = s.timeProvider.NowMillis()

	slot, err := s.registry.GetByID(booking.SlotID)
	if err != nil {
		// Откатываем переход: журнал ссылается на несуществующий слот
		booking.Status = domain.StatusPending
		booking.EntryTime = 0
		s.logger.Error("MarkEntry: slot id=%d not found for booking id=%d, transition rolled back",
			booking.SlotID, bookingID)
		return nil, fmt.Errorf("%w: slot id=%d for booking id=%d", ErrSlotNotFound, booking.SlotID, bookingID)
	}

	if !slot.Occupied {
		// Рассинхронизация журнала и реестра: восстанавливаем назначение
		slot.Assign(booking.ID)
		s.metrics.IncSlotDesyncRepairs()
		s.logger.Warn("MarkEntry: slot id=%d was unexpectedly free, re-assigned to booking id=%d",
			slot.ID, bookingID)
	}

	s.logger.Info("MarkEntry: booking id=%d is now ACTIVE, entry at %d", bookingID, booking.EntryTime)
	return booking.Clone(), nil
}

// MarkExit фиксирует выезд: ACTIVE -> COMPLETED.
// Начисляет плату: ceil(длительность/минута) минут, минимум 1 минута,
// умноженные на поминутную ставку типа слота. Освобождает слот.
func (s *Service) MarkExit(ctx context.Context, bookingID int) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.ledger.GetByID(bookingID)
	if err != nil {
		s.logger.Warn("MarkExit: booking id=%d not found", bookingID)
		return nil, ErrBookingNotFound
	}

	if booking.Status != domain.StatusActive {
		s.logger.Warn("MarkExit: booking id=%d has status %s, only ACTIVE can be marked as exit",
			bookingID, booking.Status)
		return nil, fmt.Errorf("%w: booking id=%d has status %s, want ACTIVE",
			ErrWrongStatus, bookingID, booking.Status)
	}

	if !booking.HasEntered() {
		s.logger.Warn("MarkExit: booking id=%d has no recorded entry time", bookingID)
		return nil, fmt.Errorf("%w: booking id=%d", ErrEntryNotRecorded, bookingID)
	}

	booking.ExitTime = s.timeProvider.NowMillis()

	if booking.ExitTime < booking.EntryTime {
		booking.ExitTime = 0
		s.logger.Error("MarkExit: exit time is before entry time for booking id=%d", bookingID)
		return nil, fmt.Errorf("%w: booking id=%d", ErrClockSkew, bookingID)
	}

	minutes := chargedMinutes(booking.ExitTime - booking.EntryTime)
	rate := s.rateForSlot(booking.SlotID, bookingID)
	amount := float64(minutes) * rate
	booking.Amount = &amount
	booking.Status = domain.StatusCompleted

	if err := s.registry.Release(booking.SlotID); err != nil {
		s.logger.Warn("MarkExit: could not release slot id=%d for booking id=%d: slot not found",
			booking.SlotID, bookingID)
	}

	s.metrics.ObserveCompleted(amount)
	s.logger.Info("MarkExit: booking id=%d completed, %d min charged at %.2f/min, amount=%.2f",
		bookingID, minutes, rate, amount)
	return booking.Clone(), nil
}

// chargedMinutes переводит миллисекунды в оплачиваемые минуты:
// округление вверх, минимум одна минута даже за мгновенную стоянку.
func chargedMinutes(durationMillis int64) int64 {
	minutes := int64(math.Ceil(float64(durationMillis) / float64(domain.MillisPerMinute)))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// rateForSlot определяет поминутную ставку по типу слота.
// Отсутствующий или неизвестный слот деградирует до ставки REGULAR.
func (s *Service) rateForSlot(slotID int, bookingID int) float64 {
	slot, err := s.registry.GetByID(slotID)
	if err != nil {
		rate := s.tariff.FallbackRate()
		s.logger.Warn("MarkExit: slot id=%d not found for booking id=%d, using default rate %.2f/min",
			slotID, bookingID, rate)
		return rate
	}

	rate, known := s.tariff.RateFor(slot.Type)
	if !known {
		s.logger.Warn("MarkExit: unknown slot type %q for slot id=%d, using default rate %.2f/min",
			slot.Type, slotID, rate)
	}
	return rate
}

// ProcessExpirations отменяет просроченные PENDING-бронирования и
// освобождает их слоты. Вызывается перед операциями, чувствительными к
// доступности (резервирование, отображение слотов); не фоновый таймер.
// Идемпотентна: повторный запуск не меняет уже отмененные бронирования.
func (s *Service) ProcessExpirations(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.NowMillis()
	expired := 0

	for _, booking := range s.ledger.List() {
		if booking.Status != domain.StatusPending {
			continue
		}
		if now-booking.CreationTime <= s.tariff.BookingTimeoutMillis {
			continue
		}

		booking.Status = domain.StatusCancelled
		if err := s.registry.Release(booking.SlotID); err != nil {
			s.logger.Warn("ProcessExpirations: could not release slot id=%d for booking id=%d: slot not found",
				booking.SlotID, booking.ID)
		}
		expired++
		s.logger.Info("ProcessExpirations: booking id=%d expired and was auto-cancelled", booking.ID)
	}

	s.metrics.AddBookingsExpired(expired)
	return expired
}

// Pay проводит оплату завершенного бронирования.
// Если начисленная сумма не задана, внесенная сумма принимается и
// записывается безусловно; иначе платеж принимается при paid >= due.
func (s *Service) Pay(ctx context.Context, bookingID int, amount float64) error {
	if amount < 0 {
		s.logger.Warn("Pay: negative amount %.2f for booking id=%d", amount, bookingID)
		return ErrNegativeAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.ledger.GetByID(bookingID)
	if err != nil {
		s.logger.Warn("Pay: booking id=%d not found", bookingID)
		return ErrBookingNotFound
	}

	if booking.Status != domain.StatusCompleted {
		s.logger.Warn("Pay: booking id=%d has status %s, only COMPLETED bookings can be paid",
			bookingID, booking.Status)
		return fmt.Errorf("%w: booking id=%d has status %s, want COMPLETED",
			ErrWrongStatus, bookingID, booking.Status)
	}

	if booking.Amount == nil {
		booking.Amount = &amount
		s.logger.Info("Pay: booking id=%d had no amount due, accepted %.2f", bookingID, amount)
		return nil
	}

	if amount < *booking.Amount {
		s.logger.Warn("Pay: amount %.2f is less than due %.2f for booking id=%d",
			amount, *booking.Amount, bookingID)
		return fmt.Errorf("%w: paid %.2f, due %.2f", ErrInsufficientPayment, amount, *booking.Amount)
	}

	s.logger.Info("Pay: booking id=%d paid %.2f (due %.2f)", bookingID, amount, *booking.Amount)
	return nil
}

// CanRefund проверяет право на возврат средств.
// Только валидация: состояние не меняется, деньги не двигаются.
func (s *Service) CanRefund(ctx context.Context, bookingID int, amount float64) error {
	if amount < 0 {
		s.logger.Warn("CanRefund: negative amount %.2f for booking id=%d", amount, bookingID)
		return ErrNegativeAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.ledger.GetByID(bookingID)
	if err != nil {
		s.logger.Warn("CanRefund: booking id=%d not found", bookingID)
		return ErrBookingNotFound
	}

	if booking.Status != domain.StatusCompleted {
		s.logger.Warn("CanRefund: booking id=%d has status %s, refunds require COMPLETED",
			bookingID, booking.Status)
		return fmt.Errorf("%w: booking id=%d has status %s, want COMPLETED",
			ErrWrongStatus, bookingID, booking.Status)
	}

	return nil
}

// GetBooking возвращает копию бронирования по id
func (s *Service) GetBooking(ctx context.Context, bookingID int) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.ledger.GetByID(bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return booking.Clone(), nil
}

// GetBookings возвращает копии бронирований по списку id,
// пропуская отсутствующие
func (s *Service) GetBookings(ctx context.Context, ids []int) []*domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Booking, 0, len(ids))
	for _, id := range ids {
		booking, err := s.ledger.GetByID(id)
		if err != nil {
			s.logger.Warn("GetBookings: booking id=%d from history not found in ledger", id)
			continue
		}
		out = append(out, booking.Clone())
	}
	return out
}

// Slots возвращает копии всех слотов в порядке создания
func (s *Service) Slots(ctx context.Context) []*domain.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.List()
}

// SaveBookings сохраняет журнал в файл персистентности
func (s *Service) SaveBookings(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.files.Save(s.ledger.List()); err != nil {
		s.logger.Error("SaveBookings: %v", err)
		return fmt.Errorf("%w: save to %s: %v", ErrPersistence, s.files.Path(), err)
	}

	s.logger.Info("SaveBookings: ledger saved to %s", s.files.Path())
	return nil
}

// LoadBookings восстанавливает журнал из файла персистентности.
// Переназначает слоты для PENDING/ACTIVE бронирований и пересчитывает
// следующий id журнала. При ошибке чтения состояние в памяти не меняется.
func (s *Service) LoadBookings(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.files.Load()
	if err != nil {
		s.logger.Error("LoadBookings: %v", err)
		return 0, fmt.Errorf("%w: load from %s: %v", ErrPersistence, s.files.Path(), err)
	}

	s.ledger.Replace(loaded)

	// Синхронизируем занятость слотов с загруженным журналом
	for _, booking := range loaded {
		if booking.Status != domain.StatusPending && booking.Status != domain.StatusActive {
			continue
		}
		if err := s.registry.Assign(booking.SlotID, booking.ID); err != nil {
			s.logger.Warn("LoadBookings: slot id=%d for booking id=%d not found in registry",
				booking.SlotID, booking.ID)
		}
	}

	s.logger.Info("LoadBookings: %d bookings loaded from %s", len(loaded), s.files.Path())
	return len(loaded), nil
}
