package user

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleFarmer   Role = "farmer"
	RoleAdmin    Role = "admin"
)

// ValidRole reports whether s names one of the closed role set. Roles are a
// closed enumeration, never free-form strings from a request.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleCustomer, RoleFarmer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
