package reserve_slot

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модель запроса на резервирование слота
type Request struct {
	Username string // имя аутентифицированного пользователя
	SlotID   *int   // конкретный слот; nil - первый свободный
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int
	Username     string
	SlotID       int
	Status       string
	CreationTime int64 // Unix milliseconds
}

// FromDomainBooking конвертирует domain модель в ответ usecase
func FromDomainBooking(b *domain.Booking) *Response {
	return &Response{
		ID:           b.ID,
		Username:     b.Username,
		SlotID:       b.SlotID,
		Status:       string(b.Status),
		CreationTime: b.CreationTime,
	}
}
