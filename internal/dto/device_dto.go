package dto

import (
	"time"

	"github.com/google/uuid"
)

type DeviceResponse struct {
	Id       string                 `json:"id"`
	Name     string                 `json:"name"`
	Type     string                 `json:"type"`
	Status   string                 `json:"status"`
	IP       string                 `json:"ip"`
	Specs    map[string]interface{} `json:"specs,omitempty"`
	UserId   *uuid.UUID             `json:"user_id,omitempty"`
	LastSeen time.Time              `json:"last_seen"`
}

type DeviceCreateRequest struct {
	Id    string                 `json:"id" validate:"required"`
	Name  string                 `json:"name" validate:"required"`
	Type  string                 `json:"type" validate:"required"`
	IP    string                 `json:"ip" validate:"required"`
	Specs map[string]interface{} `json:"specs,omitempty"`
}

// DeviceUpdateRequest is a partial update; nil fields are left untouched.
type DeviceUpdateRequest struct {
	Name   *string                `json:"name"`
	Type   *string                `json:"type"`
	IP     *string                `json:"ip"`
	Status *string                `json:"status"`
	Specs  map[string]interface{} `json:"specs"`
}

type DeviceScanResponse struct {
	Devices int    `json:"devices"`
	Message string `json:"message"`
}
