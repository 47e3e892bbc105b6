package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"edge-ai-be/internal/dto"
	"edge-ai-be/internal/entity"
	"edge-ai-be/pkg/airesponse"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	content string
	debug   map[string]interface{}
	err     error
}

func (p *stubProvider) Generate(ctx context.Context, req airesponse.Request) (*airesponse.Response, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &airesponse.Response{Content: p.content, Debug: p.debug}, nil
}

func TestSendPersistsBothTurns(t *testing.T) {
	factory := newFakeFactory()
	svc := NewChatService(factory, &stubProvider{content: "Hello from the edge."})
	userId := uuid.New()
	deviceId := "rpi-001"

	res, err := svc.Send(context.Background(), userId, &dto.SendMessageRequest{
		Message:  "How hot is the device?",
		DeviceId: &deviceId,
	})
	assert.NoError(t, err)

	assert.Equal(t, "user", res.UserMessage.Role)
	assert.Equal(t, "How hot is the device?", res.UserMessage.Content)
	assert.Equal(t, "assistant", res.AiMessage.Role)
	assert.Equal(t, "Hello from the edge.", res.AiMessage.Content)
	assert.Nil(t, res.UserMessage.Debug)

	assert.Len(t, factory.uow.chats.messages, 2)
	assert.True(t, factory.uow.committed)
	for _, m := range factory.uow.chats.messages {
		assert.Equal(t, userId, m.UserId)
		if assert.NotNil(t, m.DeviceId) {
			assert.Equal(t, deviceId, *m.DeviceId)
		}
	}
}

func TestSendAttachesDebugPayloads(t *testing.T) {
	factory := newFakeFactory()
	svc := NewChatService(factory, &stubProvider{
		content: "ok",
		debug:   map[string]interface{}{"processingTime": 350},
	})

	res, err := svc.Send(context.Background(), uuid.New(), &dto.SendMessageRequest{
		Message: "status?",
		Images:  []string{"data:image/png;base64,AAAA"},
		Debug:   true,
	})
	assert.NoError(t, err)

	assert.Equal(t, "status?", res.UserMessage.Debug["userInput"])
	assert.NotEmpty(t, res.UserMessage.Debug["timestamp"])
	assert.Equal(t, 350, res.AiMessage.Debug["processingTime"])
	assert.Equal(t, []string{"data:image/png;base64,AAAA"}, res.UserMessage.Images)
}

func TestSendProviderFailureWritesNothing(t *testing.T) {
	factory := newFakeFactory()
	svc := NewChatService(factory, &stubProvider{err: errors.New("model offline")})

	_, err := svc.Send(context.Background(), uuid.New(), &dto.SendMessageRequest{Message: "hi"})
	assert.Error(t, err)
	assert.Empty(t, factory.uow.chats.messages)
	assert.False(t, factory.uow.committed)
}

func TestHistoryFiltersAndOrders(t *testing.T) {
	factory := newFakeFactory()
	svc := NewChatService(factory, &stubProvider{content: "ok"})
	userId := uuid.New()
	otherUser := uuid.New()
	deviceA := "rpi-001"
	deviceB := "coral-001"

	base := time.Now()
	seed := []*entity.ChatMessage{
		{Id: uuid.New(), UserId: userId, DeviceId: &deviceA, Role: entity.ChatRoleAssistant, Content: "second", CreatedAt: base.Add(time.Second)},
		{Id: uuid.New(), UserId: userId, DeviceId: &deviceA, Role: entity.ChatRoleUser, Content: "first", CreatedAt: base},
		{Id: uuid.New(), UserId: userId, DeviceId: &deviceB, Role: entity.ChatRoleUser, Content: "other device", CreatedAt: base},
		{Id: uuid.New(), UserId: otherUser, DeviceId: &deviceA, Role: entity.ChatRoleUser, Content: "not mine", CreatedAt: base},
	}
	for _, m := range seed {
		assert.NoError(t, factory.uow.chats.Create(context.Background(), m))
	}

	res, err := svc.History(context.Background(), userId, &deviceA)
	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "first", res[0].Content)
	assert.Equal(t, "second", res[1].Content)

	all, err := svc.History(context.Background(), userId, nil)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}
