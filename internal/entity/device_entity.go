package entity

import (
	"time"

	"github.com/google/uuid"
)

type DeviceStatus string

const (
	DeviceStatusDisconnected DeviceStatus = "disconnected"
	DeviceStatusConnected    DeviceStatus = "connected"
)

// Device represents an externally managed edge endpoint. The system never
// talks to real hardware; the registry row is the whole device.
type Device struct {
	Id        string
	Name      string
	Type      string
	IP        string
	Status    DeviceStatus
	Specs     map[string]interface{}
	UserId    *uuid.UUID
	LastSeen  time.Time
	CreatedAt time.Time
}
