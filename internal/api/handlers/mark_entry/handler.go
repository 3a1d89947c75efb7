package mark_entry

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/parking"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgWrongStatus      = "въезд возможен только для бронирования в статусе PENDING"
	msgSlotNotFound     = "слот бронирования не найден в реестре"
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

// Handle PATCH /api/v1/bookings/{bookingId}/entry
// Маршрут закрыт ролями ATTENDANT/ADMIN.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.Atoi(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/entry - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.engine.MarkEntry(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, parking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/entry - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, parking.ErrWrongStatus):
			h.logger.Warn("PATCH /bookings/{id}/entry - Wrong status: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusConflict, msgWrongStatus)

		case errors.Is(err, parking.ErrSlotNotFound):
			h.logger.Error("PATCH /bookings/{id}/entry - Slot missing: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotFound)

		default:
			h.logger.Error("PATCH /bookings/{id}/entry - Failed to mark entry: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/entry - Entry marked: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainBooking(booking))
}
