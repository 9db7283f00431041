package dto

import "github.com/spec-kit/marketplace-service/internal/domain"

// WorkerRequest payload for creating or updating a courier profile.
type WorkerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Vehicle  string `json:"vehicle"`
	Email    string `json:"email"`
	ImageURL string `json:"imageUrl"`
}

// ToDomain converts the request into a domain worker.
func (r WorkerRequest) ToDomain() *domain.Worker {
	return &domain.Worker{
		Name:     r.Name,
		Phone:    r.Phone,
		Vehicle:  r.Vehicle,
		Email:    r.Email,
		ImageURL: r.ImageURL,
	}
}
