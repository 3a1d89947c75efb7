package register_staff

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// RegisterStaffRequest HTTP request model
type RegisterStaffRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // ATTENDANT или ADMIN
}

// UserResponse HTTP response model
type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// FromDomainUser конвертирует domain модель в HTTP response
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
	}
}
