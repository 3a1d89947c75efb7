package domain

// SlotType categorizes the physical spaces available in the lot
type SlotType string

const (
	SlotCompact     SlotType = "COMPACT"
	SlotRegular     SlotType = "REGULAR"
	SlotLarge       SlotType = "LARGE"
	SlotHandicapped SlotType = "HANDICAPPED"
)

// ValidSlotTypes перечень допустимых типов слотов
var ValidSlotTypes = []SlotType{
	SlotCompact,
	SlotRegular,
	SlotLarge,
	SlotHandicapped,
}

// IsValidSlotType проверяет, что строка является допустимым типом слота
func IsValidSlotType(t SlotType) bool {
	for _, valid := range ValidSlotTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// Slot represents a physical parking space.
// Invariant: Occupied == (CurrentBookingID != nil).
type Slot struct {
	ID               int
	Type             SlotType
	Occupied         bool
	CurrentBookingID *int
}

// Assign marks the slot as occupied by the given booking
func (s *Slot) Assign(bookingID int) {
	s.Occupied = true
	s.CurrentBookingID = &bookingID
}

// Release frees the slot. Idempotent.
func (s *Slot) Release() {
	s.Occupied = false
	s.CurrentBookingID = nil
}

// IsFree returns true if the slot can be reserved
func (s *Slot) IsFree() bool {
	return !s.Occupied
}

// Clone returns a deep copy of the slot
func (s *Slot) Clone() *Slot {
	if s == nil {
		return nil
	}
	cp := *s
	if s.CurrentBookingID != nil {
		id := *s.CurrentBookingID
		cp.CurrentBookingID = &id
	}
	return &cp
}
