package mark_entry

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	SlotID       int    `json:"slotId"`
	Status       string `json:"status"`
	CreationTime int64  `json:"creationTime"`
	EntryTime    int64  `json:"entryTime"`
}

// FromDomainBooking конвертирует domain модель в HTTP response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		Username:     b.Username,
		SlotID:       b.SlotID,
		Status:       string(b.Status),
		CreationTime: b.CreationTime,
		EntryTime:    b.EntryTime,
	}
}
