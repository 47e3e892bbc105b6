package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessageResponse struct {
	Id        uuid.UUID              `json:"id"`
	Role      string                 `json:"role"`
	Content   string                 `json:"content"`
	Images    []string               `json:"images,omitempty"`
	Debug     map[string]interface{} `json:"debug,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

// SendMessageRequest is assembled by the controller from the multipart form;
// images arrive pre-validated as data URLs.
type SendMessageRequest struct {
	Message  string   `validate:"required"`
	DeviceId *string  `validate:"omitempty,min=1"`
	Images   []string
	Debug    bool
}

type ChatResponse struct {
	UserMessage ChatMessageResponse `json:"userMessage"`
	AiMessage   ChatMessageResponse `json:"aiMessage"`
}
