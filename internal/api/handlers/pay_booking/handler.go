package pay_booking

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
	msgInvalidBody      = "некорректное тело запроса"
	msgNotFound         = "бронирование не найдено"
	msgWrongStatus      = "оплата возможна только для бронирования в статусе COMPLETED"
	msgNegativeAmount   = "сумма оплаты не может быть отрицательной"
	msgInsufficient     = "сумма оплаты меньше суммы к оплате"
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

// Handle POST /api/v1/bookings/{bookingId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.Atoi(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/payment - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req PayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.engine.Pay(r.Context(), bookingID, req.Amount); err != nil {
		switch {
		case errors.Is(err, parking.ErrNegativeAmount):
			h.logger.Warn("POST /bookings/{id}/payment - Negative amount: booking_id=%d, amount=%.2f",
				bookingID, req.Amount)
			handlers.RespondBadRequest(w, msgNegativeAmount)

		case errors.Is(err, parking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/payment - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, parking.ErrWrongStatus):
			h.logger.Warn("POST /bookings/{id}/payment - Wrong status: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusConflict, msgWrongStatus)

		case errors.Is(err, parking.ErrInsufficientPayment):
			h.logger.Warn("POST /bookings/{id}/payment - Insufficient payment: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondError(w, http.StatusConflict, msgInsufficient)

		default:
			h.logger.Error("POST /bookings/{id}/payment - Failed to pay: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	booking, err := h.engine.GetBooking(r.Context(), bookingID)
	if err != nil {
		h.logger.Error("POST /bookings/{id}/payment - Failed to read booking after payment: booking_id=%d, error=%v",
			bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings/{id}/payment - Payment accepted: booking_id=%d, paid=%.2f",
		bookingID, req.Amount)
	handlers.RespondJSON(w, http.StatusOK, FromDomainBooking(booking, req.Amount))
}
