package dto

import "github.com/google/uuid"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

type OIDCLoginRequest struct {
	Provider string `json:"provider" validate:"required"`
}

type UserResponse struct {
	Id    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

type LoginResponse struct {
	User      UserResponse `json:"user"`
	SessionId string       `json:"sessionId"`
}
