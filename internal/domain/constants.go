package domain

// Billing rates, per minute of occupancy
const (
	RateCompactPerMinute     = 7.0
	RateRegularPerMinute     = 10.0
	RateLargePerMinute       = 20.0
	RateHandicappedPerMinute = 5.0 // discounted rate
)

// System configuration defaults
const (
	// DefaultBookingTimeoutMillis время жизни PENDING-бронирования
	// до автоматической отмены sweep'ом
	DefaultBookingTimeoutMillis int64 = 60_000

	// MillisPerMinute используется при расчете длительности стоянки
	MillisPerMinute int64 = 60_000

	// DefaultBookingsFile файл персистентности журнала бронирований
	DefaultBookingsFile = "bookings.txt"
)

// DefaultRates тарифы по умолчанию для каждого типа слота
var DefaultRates = map[SlotType]float64{
	SlotCompact:     RateCompactPerMinute,
	SlotRegular:     RateRegularPerMinute,
	SlotLarge:       RateLargePerMinute,
	SlotHandicapped: RateHandicappedPerMinute,
}
