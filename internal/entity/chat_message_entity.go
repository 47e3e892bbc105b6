package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is immutable once created and ordered by CreatedAt within a
// (user, device) scope.
type ChatMessage struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	DeviceId  *string
	Role      ChatRole
	Content   string
	Images    []string
	Debug     map[string]interface{}
	CreatedAt time.Time
}
