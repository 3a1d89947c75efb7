package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-ParkingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP model одного слота
type SlotResponse struct {
	ID               int    `json:"id"`
	Type             string `json:"type"`
	Occupied         bool   `json:"occupied"`
	CurrentBookingID *int   `json:"currentBookingId,omitempty"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Slots     []SlotResponse `json:"slots"`
	FreeCount int            `json:"freeCount"`
	Total     int            `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	out := &SlotsResponse{
		Slots:     make([]SlotResponse, 0, len(resp.Slots)),
		FreeCount: resp.FreeCount,
		Total:     resp.Total,
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			ID:               s.ID,
			Type:             s.Type,
			Occupied:         s.Occupied,
			CurrentBookingID: s.CurrentBookingID,
		})
	}
	return out
}
