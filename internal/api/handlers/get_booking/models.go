package get_booking

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int      `json:"id"`
	Username     string   `json:"username"`
	SlotID       int      `json:"slotId"`
	Status       string   `json:"status"`
	Amount       *float64 `json:"amount,omitempty"`
	CreationTime int64    `json:"creationTime"` // Unix milliseconds
	EntryTime    int64    `json:"entryTime"`    // 0 = not set
	ExitTime     int64    `json:"exitTime"`     // 0 = not set
}

// FromDomainBooking конвертирует domain модель в HTTP response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		Username:     b.Username,
		SlotID:       b.SlotID,
		Status:       string(b.Status),
		Amount:       b.Amount,
		CreationTime: b.CreationTime,
		EntryTime:    b.EntryTime,
		ExitTime:     b.ExitTime,
	}
}
