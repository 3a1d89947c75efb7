package get_user_bookings

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingResponse HTTP model одного бронирования
type BookingResponse struct {
	ID           int      `json:"id"`
	Username     string   `json:"username"`
	SlotID       int      `json:"slotId"`
	Status       string   `json:"status"`
	Amount       *float64 `json:"amount,omitempty"`
	CreationTime int64    `json:"creationTime"`
	EntryTime    int64    `json:"entryTime"`
	ExitTime     int64    `json:"exitTime"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBookings конвертирует список domain моделей в HTTP response
func FromDomainBookings(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, BookingResponse{
			ID:           b.ID,
			Username:     b.Username,
			SlotID:       b.SlotID,
			Status:       string(b.Status),
			Amount:       b.Amount,
			CreationTime: b.CreationTime,
			EntryTime:    b.EntryTime,
			ExitTime:     b.ExitTime,
		})
	}
	return resp
}
