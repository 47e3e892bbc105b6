package mapper

import (
	"edge-ai-be/internal/entity"
	"edge-ai-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToEntity(c *model.ChatMessage) *entity.ChatMessage {
	if c == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:        c.Id,
		UserId:    c.UserId,
		DeviceId:  c.DeviceId,
		Role:      entity.ChatRole(c.Role),
		Content:   c.Content,
		Images:    []string(c.Images),
		Debug:     map[string]interface{}(c.Debug),
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChatMapper) ToModel(c *entity.ChatMessage) *model.ChatMessage {
	if c == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:        c.Id,
		UserId:    c.UserId,
		DeviceId:  c.DeviceId,
		Role:      string(c.Role),
		Content:   c.Content,
		Images:    datatypes.JSONSlice[string](c.Images),
		Debug:     datatypes.JSONMap(c.Debug),
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChatMapper) ToEntities(messages []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(messages))
	for i, c := range messages {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
