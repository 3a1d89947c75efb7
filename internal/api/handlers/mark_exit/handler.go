package mark_exit

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
	msgWrongStatus      = "выезд возможен только для бронирования в статусе ACTIVE"
	msgEntryNotRecorded = "въезд по бронированию не был зафиксирован"
	msgClockSkew        = "время выезда раньше времени въезда, операция отклонена"
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

// Handle PATCH /api/v1/bookings/{bookingId}/exit
// Маршрут закрыт ролями ATTENDANT/ADMIN.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.Atoi(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/exit - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.engine.MarkExit(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, parking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/exit - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, parking.ErrWrongStatus):
			h.logger.Warn("PATCH /bookings/{id}/exit - Wrong status: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusConflict, msgWrongStatus)

		case errors.Is(err, parking.ErrEntryNotRecorded):
			h.logger.Warn("PATCH /bookings/{id}/exit - Entry not recorded: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgEntryNotRecorded)

		case errors.Is(err, parking.ErrClockSkew):
			h.logger.Error("PATCH /bookings/{id}/exit - Clock skew detected: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondError(w, http.StatusConflict, msgClockSkew)

		default:
			h.logger.Error("PATCH /bookings/{id}/exit - Failed to mark exit: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/exit - Exit marked: booking_id=%d, amount=%v", bookingID, booking.Amount)
	handlers.RespondJSON(w, http.StatusOK, FromDomainBooking(booking))
}
