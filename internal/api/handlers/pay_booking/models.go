package pay_booking

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// PayRequest HTTP request model
type PayRequest struct {
	Amount float64 `json:"amount"`
}

// PayResponse HTTP response model
type PayResponse struct {
	ID       int      `json:"id"`
	Username string   `json:"username"`
	SlotID   int      `json:"slotId"`
	Status   string   `json:"status"`
	Amount   *float64 `json:"amount"`
	Paid     float64  `json:"paid"`
}

// FromDomainBooking конвертирует domain модель в HTTP response
func FromDomainBooking(b *domain.Booking, paid float64) *PayResponse {
	return &PayResponse{
		ID:       b.ID,
		Username: b.Username,
		SlotID:   b.SlotID,
		Status:   string(b.Status),
		Amount:   b.Amount,
		Paid:     paid,
	}
}
