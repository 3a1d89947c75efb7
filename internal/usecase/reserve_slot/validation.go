package reserve_slot

import (
	"fmt"
	"strings"
)

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return ErrInvalidUser
	}
	if strings.TrimSpace(req.Username) == "" {
		return ErrInvalidUser
	}
	if req.SlotID != nil && *req.SlotID <= 0 {
		return fmt.Errorf("%w: slot id=%d does not exist", ErrSlotNotAvailable, *req.SlotID)
	}
	return nil
}
