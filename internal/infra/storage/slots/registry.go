package slots

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Registry in-memory реестр парковочных слотов.
// Слоты создаются один раз при старте и никогда не удаляются; id
// назначаются последовательно начиная с 1 и стабильны.
//
// Реестр не синхронизирован: все мутации сериализует движок
// (internal/service/parking) единым мьютексом на пару реестр+журнал.
type Registry struct {
	slots []*domain.Slot
}

// NewRegistry создает пустой реестр
func NewRegistry() *Registry {
	return &Registry{slots: make([]*domain.Slot, 0, 16)}
}

// Add добавляет слот указанного типа и возвращает его
func (r *Registry) Add(slotType domain.SlotType) *domain.Slot {
	slot := &domain.Slot{
		ID:   len(r.slots) + 1,
		Type: slotType,
	}
	r.slots = append(r.slots, slot)
	return slot
}

// AddAll добавляет несколько слотов в порядке перечисления
func (r *Registry) AddAll(types ...domain.SlotType) {
	for _, t := range types {
		r.Add(t)
	}
}

// GetByID возвращает слот по id
func (r *Registry) GetByID(id int) (*domain.Slot, error) {
	for _, s := range r.slots {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, ErrSlotNotFound
}

// Assign помечает слот занятым указанным бронированием.
// Вызывающая сторона обязана предварительно убедиться, что слот свободен.
func (r *Registry) Assign(slotID int, bookingID int) error {
	slot, err := r.GetByID(slotID)
	if err != nil {
		return err
	}
	slot.Assign(bookingID)
	return nil
}

// Release освобождает слот. Идемпотентна.
func (r *Registry) Release(slotID int) error {
	slot, err := r.GetByID(slotID)
	if err != nil {
		return err
	}
	slot.Release()
	return nil
}

// List возвращает копии всех слотов в порядке создания
func (r *Registry) List() []*domain.Slot {
	out := make([]*domain.Slot, len(r.slots))
	for i, s := range r.slots {
		out[i] = s.Clone()
	}
	return out
}

// FirstFree возвращает первый свободный слот в порядке создания
func (r *Registry) FirstFree() (*domain.Slot, error) {
	for _, s := range r.slots {
		if s.IsFree() {
			return s, nil
		}
	}
	return nil, ErrSlotNotFound
}

// Count возвращает количество слотов
func (r *Registry) Count() int {
	return len(r.slots)
}
