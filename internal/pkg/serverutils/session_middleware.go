package serverutils

import (
	"context"
	"errors"

	"edge-ai-be/internal/entity"

	"github.com/gofiber/fiber/v2"
)

// HeaderSessionId carries the opaque session token on every authenticated
// request.
const HeaderSessionId = "X-Session-Id"

// ErrUnauthorized marks a missing, unknown, or stale session.
var ErrUnauthorized = errors.New("unauthorized")

// UserResolver turns a session token into a live user record. A stale token
// (user deleted underneath the session) must evict the entry and report
// ErrUnauthorized.
type UserResolver interface {
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}

// SessionMiddleware authenticates the request via the session header and
// stores the resolved user in ctx.Locals("user").
func SessionMiddleware(resolver UserResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := ctx.Get(HeaderSessionId)
		if token == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Unauthorized"))
		}

		user, err := resolver.CurrentUser(ctx.Context(), token)
		if err != nil {
			if errors.Is(err, ErrUnauthorized) {
				return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Unauthorized"))
			}
			return err
		}

		ctx.Locals("user", user)
		return ctx.Next()
	}
}

// CurrentUser fetches the user stored by SessionMiddleware.
func CurrentUser(ctx *fiber.Ctx) *entity.User {
	user, _ := ctx.Locals("user").(*entity.User)
	return user
}
