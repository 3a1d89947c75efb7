package mark_exit

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int      `json:"id"`
	Username     string   `json:"username"`
	SlotID       int      `json:"slotId"`
	Status       string   `json:"status"`
	Amount       *float64 `json:"amount"`
	CreationTime int64    `json:"creationTime"`
	EntryTime    int64    `json:"entryTime"`
	ExitTime     int64    `json:"exitTime"`
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
