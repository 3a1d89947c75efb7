package domain

// Tariff is the immutable billing configuration held by the lifecycle
// engine. It maps slot types to per-minute rates and carries the pending
// booking timeout.
type Tariff struct {
	// PerMinuteRates тариф за минуту стоянки по типу слота
	PerMinuteRates map[SlotType]float64

	// BookingTimeoutMillis возраст PENDING-бронирования, после которого
	// оно отменяется sweep'ом
	BookingTimeoutMillis int64
}

// DefaultTariff возвращает тариф со стандартными ставками и таймаутом
func DefaultTariff() Tariff {
	rates := make(map[SlotType]float64, len(DefaultRates))
	for t, r := range DefaultRates {
		rates[t] = r
	}
	return Tariff{
		PerMinuteRates:       rates,
		BookingTimeoutMillis: DefaultBookingTimeoutMillis,
	}
}

// RateFor returns the per-minute rate for a slot type.
// The second return value is false when the type is unknown; callers are
// expected to fall back to the REGULAR rate in that case.
func (t Tariff) RateFor(slotType SlotType) (float64, bool) {
	rate, ok := t.PerMinuteRates[slotType]
	if !ok {
		return t.FallbackRate(), false
	}
	return rate, true
}

// FallbackRate ставка по умолчанию для неизвестных типов слотов
func (t Tariff) FallbackRate() float64 {
	if rate, ok := t.PerMinuteRates[SlotRegular]; ok {
		return rate
	}
	return RateRegularPerMinute
}
