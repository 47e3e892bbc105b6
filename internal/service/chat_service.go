package service

import (
	"context"
	"time"

	"edge-ai-be/internal/dto"
	"edge-ai-be/internal/entity"
	"edge-ai-be/internal/repository/specification"
	"edge-ai-be/internal/repository/unitofwork"
	"edge-ai-be/pkg/airesponse"

	"github.com/google/uuid"
)

type IChatService interface {
	Send(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.ChatResponse, error)
	History(ctx context.Context, userId uuid.UUID, deviceId *string) ([]*dto.ChatMessageResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   airesponse.Provider
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, provider airesponse.Provider) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		provider:   provider,
	}
}

// Send records the user turn, generates the assistant turn, and persists
// both inside one transaction. Either both rows land or neither does.
func (s *chatService) Send(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.ChatResponse, error) {
	var userDebug map[string]interface{}
	if req.Debug {
		// Key names are part of the client contract; the timestamp is an
		// opaque correlation id rather than a wall-clock value.
		userDebug = map[string]interface{}{
			"userInput": req.Message,
			"timestamp": uuid.NewString(),
		}
	}

	userMsg := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    userId,
		DeviceId:  req.DeviceId,
		Role:      entity.ChatRoleUser,
		Content:   req.Message,
		Images:    req.Images,
		Debug:     userDebug,
		CreatedAt: time.Now(),
	}

	generated, err := s.provider.Generate(ctx, airesponse.Request{
		Message:    req.Message,
		ImageCount: len(req.Images),
		Debug:      req.Debug,
	})
	if err != nil {
		return nil, err
	}

	aiMsg := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    userId,
		DeviceId:  req.DeviceId,
		Role:      entity.ChatRoleAssistant,
		Content:   generated.Content,
		Debug:     generated.Debug,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, userMsg); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, aiMsg); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		UserMessage: *chatMessageToResponse(userMsg),
		AiMessage:   *chatMessageToResponse(aiMsg),
	}, nil
}

// History returns the caller's messages oldest first, optionally narrowed to
// a single device.
func (s *chatService) History(ctx context.Context, userId uuid.UUID, deviceId *string) ([]*dto.ChatMessageResponse, error) {
	specs := []specification.Specification{
		specification.OwnedBy{UserId: userId},
	}
	if deviceId != nil {
		specs = append(specs, specification.ForDevice{DeviceId: *deviceId})
	}
	specs = append(specs, specification.OrderByCreatedAsc{})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		res = append(res, chatMessageToResponse(m))
	}
	return res, nil
}

func chatMessageToResponse(m *entity.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		Id:        m.Id,
		Role:      string(m.Role),
		Content:   m.Content,
		Images:    m.Images,
		Debug:     m.Debug,
		CreatedAt: m.CreatedAt,
	}
}
