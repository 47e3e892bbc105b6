package serverutils

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"edge-ai-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubResolver struct {
	users map[string]*entity.User
}

func (r *stubResolver) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	if u, ok := r.users[token]; ok {
		return u, nil
	}
	return nil, ErrUnauthorized
}

func newTestApp(resolver UserResolver) *fiber.App {
	app := fiber.New()
	app.Get("/me", SessionMiddleware(resolver), func(ctx *fiber.Ctx) error {
		user := CurrentUser(ctx)
		return ctx.JSON(SuccessResponse("ok", user.Email))
	})
	return app
}

func TestSessionMiddlewareResolvesUser(t *testing.T) {
	app := newTestApp(&stubResolver{users: map[string]*entity.User{
		"good-token": {Id: uuid.New(), Email: "alice@example.com"},
	}})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set(HeaderSessionId, "good-token")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var env Response[string]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.True(t, env.Success)
	assert.Equal(t, "alice@example.com", env.Data)
}

func TestSessionMiddlewareRejectsMissingHeader(t *testing.T) {
	app := newTestApp(&stubResolver{users: map[string]*entity.User{}})

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestSessionMiddlewareRejectsUnknownToken(t *testing.T) {
	app := newTestApp(&stubResolver{users: map[string]*entity.User{}})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set(HeaderSessionId, "stale-token")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	var env Response[any]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.False(t, env.Success)
	assert.Equal(t, 401, env.Code)
}
