package reserve_slot

import "errors"

var (
	// ErrInvalidUser возвращается, когда не передана личность пользователя
	ErrInvalidUser = errors.New("reserve_slot: invalid or missing user identity")

	// ErrUserNotFound возвращается, когда пользователь не зарегистрирован
	ErrUserNotFound = errors.New("reserve_slot: user not found")

	// ErrSlotNotAvailable возвращается, когда слот не существует, занят
	// или нет ни одного свободного
	ErrSlotNotAvailable = errors.New("reserve_slot: slot not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_slot: internal error")
)
