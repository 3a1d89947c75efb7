package reserve_slot

import (
	reserveSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/reserve_slot"
)

// ReserveSlotRequest HTTP request model.
// SlotID опционален: без него резервируется первый свободный слот.
type ReserveSlotRequest struct {
	SlotID *int `json:"slotId,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	SlotID       int    `json:"slotId"`
	Status       string `json:"status"`
	CreationTime int64  `json:"creationTime"` // Unix milliseconds
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReserveSlotRequest) ToUseCaseRequest(username string) *reserveSlot.Request {
	return &reserveSlot.Request{
		Username: username,
		SlotID:   r.SlotID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveSlot.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		Username:     resp.Username,
		SlotID:       resp.SlotID,
		Status:       resp.Status,
		CreationTime: resp.CreationTime,
	}
}
