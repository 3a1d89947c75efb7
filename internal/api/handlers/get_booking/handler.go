package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/parking"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgMissingUser      = "отсутствует личность пользователя"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	engine ParkingEngine
	logger Logger
}

func NewHandler(engine ParkingEngine, logger Logger) *Handler {
	return &Handler{
		engine: engine,
		logger: logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
// Пользователь видит только свои бронирования; персонал - любые.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.Atoi(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id} - Missing actor identity")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	booking, err := h.engine.GetBooking(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, parking.ErrBookingNotFound) {
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	if booking.Username != actor.Username && !actor.Role.IsStaff() {
		h.logger.Warn("GET /bookings/{id} - Access denied: booking_id=%d, user=%s", bookingID, actor.Username)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainBooking(booking))
}
