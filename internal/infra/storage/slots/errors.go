package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот с указанным id не существует
	ErrSlotNotFound = errors.New("slots.registry: slot not found")
)
