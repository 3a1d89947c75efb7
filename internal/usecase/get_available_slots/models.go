package get_available_slots

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SlotInfo состояние одного слота
type SlotInfo struct {
	ID               int
	Type             string
	Occupied         bool
	CurrentBookingID *int
}

// Response модель ответа со снимком парковки
type Response struct {
	Slots     []SlotInfo
	FreeCount int
	Total     int
}

// FromDomainSlots конвертирует снимок реестра в ответ usecase
func FromDomainSlots(slots []*domain.Slot) *Response {
	resp := &Response{
		Slots: make([]SlotInfo, 0, len(slots)),
		Total: len(slots),
	}

	for _, s := range slots {
		resp.Slots = append(resp.Slots, SlotInfo{
			ID:               s.ID,
			Type:             string(s.Type),
			Occupied:         s.Occupied,
			CurrentBookingID: s.CurrentBookingID,
		})
		if s.IsFree() {
			resp.FreeCount++
		}
	}

	return resp
}
