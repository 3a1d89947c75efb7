package reserve_slot

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	reserveSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/reserve_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует личность пользователя"
	msgUserNotFound       = "пользователь не найден"
	msgSlotNotAvailable   = "слот недоступен для резервирования"
)

type Handler struct {
	useCase ReserveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReserveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// Тело запроса опционально: пустое тело означает "любой свободный слот".
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing actor identity")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req ReserveSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor.Username))
	if err != nil {
		switch {
		case errors.Is(err, reserveSlot.ErrInvalidUser):
			h.logger.Warn("POST /bookings - Invalid user identity %q", actor.Username)
			handlers.RespondUnauthorized(w, msgMissingUser)

		case errors.Is(err, reserveSlot.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User %s not found", actor.Username)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, reserveSlot.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available for user=%s", actor.Username)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to reserve slot for user=%s: %v", actor.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user=%s, slot=%d",
		result.ID, actor.Username, result.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
