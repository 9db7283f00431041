package dto

import "time"

// UserRegisterRequest payload for new accounts.
type UserRegisterRequest struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// UserUpdateRequest payload for partial profile updates. Pointer
// fields distinguish "absent" from "set to empty".
type UserUpdateRequest struct {
	Name     *string `json:"name"`
	LastName *string `json:"lastName"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
}

// AuthResponse standard response for login.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
