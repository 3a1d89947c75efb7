package domain

// Role determines the level of access within the system
type Role string

const (
	RoleAdmin     Role = "ADMIN"     // full access: infrastructure, persistence
	RoleAttendant Role = "ATTENDANT" // operational access: entry, exit, payments
	RoleUser      Role = "USER"      // customer access: reservations, history
)

// IsStaff returns true for roles allowed to operate gates and payments
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleAttendant
}

// ValidRoles перечень допустимых ролей
var ValidRoles = []Role{RoleAdmin, RoleAttendant, RoleUser}

// IsValidRole проверяет, что строка является допустимой ролью
func IsValidRole(r Role) bool {
	for _, valid := range ValidRoles {
		if r == valid {
			return true
		}
	}
	return false
}

// User учетная запись пользователя системы.
// BookingIDs хранит историю бронирований в порядке создания.
type User struct {
	ID           int
	Username     string
	PasswordHash string
	Role         Role
	BookingIDs   []int
}

// Actor аутентифицированная личность, от имени которой выполняется запрос
type Actor struct {
	Username string
	Role     Role
}
