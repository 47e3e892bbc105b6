package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProviderEmail = "email"
)

type User struct {
	Id         uuid.UUID
	Email      string
	Name       string
	Provider   string
	ProviderId *string
	CreatedAt  time.Time
}
