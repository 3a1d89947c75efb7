package parking

import "errors"

var (
	// ErrInvalidUser возвращается, когда не передана личность пользователя
	ErrInvalidUser = errors.New("parking.engine: invalid or missing user identity")

	// ErrSlotNotAvailable возвращается, когда слот не существует, занят
	// или нет ни одного свободного слота
	ErrSlotNotAvailable = errors.New("parking.engine: slot not available")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("parking.engine: booking not found")

	// ErrWrongStatus возвращается при попытке перехода из недопустимого статуса
	ErrWrongStatus = errors.New("parking.engine: operation not allowed in current status")

	// ErrSlotNotFound возвращается, когда слот бронирования отсутствует в
	// реестре (рассинхронизация журнала и реестра)
	ErrSlotNotFound = errors.New("parking.engine: slot not found")

	// ErrEntryNotRecorded возвращается при попытке выезда без зафиксированного въезда
	ErrEntryNotRecorded = errors.New("parking.engine: entry time was never recorded")

	// ErrClockSkew возвращается, когда время выезда оказалось раньше времени въезда
	ErrClockSkew = errors.New("parking.engine: exit time is before entry time")

	// ErrNegativeAmount возвращается при отрицательной сумме платежа или возврата
	ErrNegativeAmount = errors.New("parking.engine: amount cannot be negative")

	// ErrInsufficientPayment возвращается, когда внесенная сумма меньше начисленной
	ErrInsufficientPayment = errors.New("parking.engine: paid amount is less than amount due")

	// ErrPersistence возвращается при ошибках сохранения или загрузки журнала
	ErrPersistence = errors.New("parking.engine: persistence failure")
)
