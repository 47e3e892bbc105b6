package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdminServiceResponse struct {
	Id        uuid.UUID              `json:"id"`
	Name      string                 `json:"name"`
	Type      string                 `json:"type"`
	Endpoint  *string                `json:"endpoint,omitempty"`
	Status    string                 `json:"status"`
	Config    map[string]interface{} `json:"config,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type AdminServiceCreateRequest struct {
	Name     string                 `json:"name" validate:"required"`
	Type     string                 `json:"type" validate:"required"`
	Endpoint *string                `json:"endpoint"`
	Status   string                 `json:"status"`
	Config   map[string]interface{} `json:"config"`
}

// AdminServiceUpdateRequest is a partial update; nil fields are left untouched.
type AdminServiceUpdateRequest struct {
	Name     *string                `json:"name"`
	Type     *string                `json:"type"`
	Endpoint *string                `json:"endpoint"`
	Status   *string                `json:"status"`
	Config   map[string]interface{} `json:"config"`
}
