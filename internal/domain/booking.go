package domain

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"   // reserved, vehicle has not arrived yet
	StatusActive    BookingStatus = "ACTIVE"    // vehicle is currently parked
	StatusCancelled BookingStatus = "CANCELLED" // booking expired before arrival
	StatusCompleted BookingStatus = "COMPLETED" // vehicle exited, fee calculated
)

// Booking represents a reservation or completed parking session.
// All timestamps are Unix milliseconds; zero means "not set".
type Booking struct {
	ID       int
	Username string
	SlotID   int
	Status   BookingStatus

	// Final fee charged. Nil until the booking is completed.
	Amount *float64

	CreationTime int64
	EntryTime    int64
	ExitTime     int64
}

// IsTerminal returns true if no further transitions are possible
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// HasEntered returns true if vehicle entry was recorded
func (b *Booking) HasEntered() bool {
	return b.EntryTime > 0
}

// Clone returns a deep copy of the booking
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	cp := *b
	if b.Amount != nil {
		amount := *b.Amount
		cp.Amount = &amount
	}
	return &cp
}

// ValidStatuses перечень допустимых статусов бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusActive,
	StatusCancelled,
	StatusCompleted,
}

// IsValidStatus проверяет, что строка является допустимым статусом
func IsValidStatus(s BookingStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
