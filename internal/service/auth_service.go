package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"edge-ai-be/internal/dto"
	"edge-ai-be/internal/entity"
	"edge-ai-be/internal/pkg/logger"
	"edge-ai-be/internal/pkg/serverutils"
	"edge-ai-be/internal/repository/memory"
	"edge-ai-be/internal/repository/specification"
	"edge-ai-be/internal/repository/unitofwork"
	"edge-ai-be/pkg/events"

	"github.com/google/uuid"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	OIDCLogin(ctx context.Context, req *dto.OIDCLoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessions       *memory.SessionRepository
	verifier       CredentialVerifier
	eventPublisher *events.Publisher
	log            logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	verifier CredentialVerifier,
	eventPublisher *events.Publisher,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		sessions:       sessions,
		verifier:       verifier,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

// displayName derives a name from the email local part. Empty local parts
// fall back to a generic label rather than an empty name.
func displayName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return "User"
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &entity.User{
			Id:        uuid.New(),
			Email:     req.Email,
			Name:      displayName(req.Email),
			Provider:  entity.ProviderEmail,
			CreatedAt: time.Now(),
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
	}

	if err := s.verifier.Verify(ctx, user, req.Password); err != nil {
		return nil, serverutils.ErrUnauthorized
	}

	return s.openSession(ctx, user)
}

func (s *authService) OIDCLogin(ctx context.Context, req *dto.OIDCLoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	email := fmt.Sprintf("demo@%s.com", req.Provider)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}

	if user == nil {
		providerId := "mock-id"
		user = &entity.User{
			Id:         uuid.New(),
			Email:      email,
			Name:       "Demo User",
			Provider:   req.Provider,
			ProviderId: &providerId,
			CreatedAt:  time.Now(),
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
	}

	return s.openSession(ctx, user)
}

func (s *authService) openSession(ctx context.Context, user *entity.User) (*dto.LoginResponse, error) {
	token, err := s.sessions.Create(user.Id)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeUserLogin,
			Data: map[string]interface{}{
				"user_id":  user.Id,
				"email":    user.Email,
				"provider": user.Provider,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("auth", "failed to publish login event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.LoginResponse{
		User: dto.UserResponse{
			Id:    user.Id,
			Email: user.Email,
			Name:  user.Name,
		},
		SessionId: token,
	}, nil
}

// Logout destroys the session. Unknown tokens succeed silently so repeated
// logouts stay idempotent.
func (s *authService) Logout(ctx context.Context, token string) error {
	s.sessions.Destroy(token)
	return nil
}

// CurrentUser resolves the session token to a live user row. A token whose
// user has been deleted is evicted on the spot.
func (s *authService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	userId, ok := s.sessions.Resolve(token)
	if !ok {
		return nil, serverutils.ErrUnauthorized
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.sessions.Destroy(token)
		return nil, serverutils.ErrUnauthorized
	}
	return user, nil
}
