package handler

import "time"

// statusResponse is the envelope for operations with no data payload.
type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// dataResponse is the envelope carrying a payload. Data has no omitempty on
// purpose: a missed lookup must render an explicit null, not drop the key.
type dataResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type statusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

type claimsResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// serverStatusResponse is the body of the root health probe.
type serverStatusResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
