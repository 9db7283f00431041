package domain

import "time"

// Role enumerates the access levels a user can hold.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the domain model for marketplace accounts. The phone number
// is the login handle and is unique across users.
type User struct {
	ID           string
	Name         string
	LastName     string
	Phone        string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the client-facing projection of a User. It never
// carries the password hash.
type PublicUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Public returns the projection safe to serialize.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		LastName: u.LastName,
		Phone:    u.Phone,
		Email:    u.Email,
		Role:     u.Role,
	}
}
