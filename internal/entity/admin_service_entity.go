package entity

import (
	"time"

	"github.com/google/uuid"
)

type ServiceStatus string

const (
	ServiceStatusActive   ServiceStatus = "active"
	ServiceStatusInactive ServiceStatus = "inactive"
)

// AdminService is a pure inventory record for an auxiliary backend service.
type AdminService struct {
	Id        uuid.UUID
	Name      string
	Type      string
	Endpoint  *string
	Status    ServiceStatus
	Config    map[string]interface{}
	CreatedAt time.Time
}
