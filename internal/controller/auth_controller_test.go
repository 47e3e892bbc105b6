package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"edge-ai-be/internal/dto"
	"edge-ai-be/internal/entity"
	"edge-ai-be/internal/pkg/serverutils"
	"edge-ai-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// logoutOnlyService backs the auth routes with nothing but the session
// store; login is out of scope for these tests.
type logoutOnlyService struct {
	sessions *memory.SessionRepository
}

func (s *logoutOnlyService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return nil, serverutils.ErrUnauthorized
}

func (s *logoutOnlyService) OIDCLogin(ctx context.Context, req *dto.OIDCLoginRequest) (*dto.LoginResponse, error) {
	return nil, serverutils.ErrUnauthorized
}

func (s *logoutOnlyService) Logout(ctx context.Context, token string) error {
	s.sessions.Destroy(token)
	return nil
}

func (s *logoutOnlyService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	if _, ok := s.sessions.Resolve(token); ok {
		return &entity.User{Id: uuid.New()}, nil
	}
	return nil, serverutils.ErrUnauthorized
}

func newAuthTestApp(t *testing.T) (*fiber.App, *memory.SessionRepository) {
	t.Helper()

	sessions := memory.NewSessionRepository(time.Hour)
	svc := &logoutOnlyService{sessions: sessions}
	ctrl := NewAuthController(svc, serverutils.SessionMiddleware(svc))

	app := fiber.New()
	ctrl.RegisterRoutes(app.Group("/api"))
	return app, sessions
}

func TestLogoutWithoutTokenSucceeds(t *testing.T) {
	app, _ := newAuthTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/auth/logout", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var env serverutils.Response[any]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.True(t, env.Success)
}

func TestLogoutWithUnknownTokenSucceeds(t *testing.T) {
	app, _ := newAuthTestApp(t)

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	req.Header.Set(serverutils.HeaderSessionId, "never-issued")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestLogoutDestroysNamedSession(t *testing.T) {
	app, sessions := newAuthTestApp(t)

	token, err := sessions.Create(uuid.New())
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	req.Header.Set(serverutils.HeaderSessionId, token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	_, found := sessions.Resolve(token)
	assert.False(t, found)
}
