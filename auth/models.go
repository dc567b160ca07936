package auth

import "time"

type Role string

const (
	// RoleBuyer creates and maintains procurement processes.
	RoleBuyer Role = "buyer"
	// RoleOperator administers the platform.
	RoleOperator Role = "operator"
)

// User is the domain representation of a platform account. Its ID is the
// owner claim stamped onto every process record the user creates. No JSON
// annotations so it can be reused by different presentation layers.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Country      string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterRequest contains account registration data supplied by callers.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Role     Role   `json:"role"`
}

// LoginRequest contains login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
