package controller

import (
	"errors"

	"edge-ai-be/internal/dto"
	"edge-ai-be/internal/pkg/serverutils"
	"edge-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	OIDCLogin(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	sessionMW   fiber.Handler
}

func NewAuthController(authService service.IAuthService, sessionMW fiber.Handler) IAuthController {
	return &authController{
		authService: authService,
		sessionMW:   sessionMW,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("login", c.Login)
	h.Post("oidc-login", c.OIDCLogin)
	h.Post("logout", c.Logout)
	h.Get("session", c.sessionMW, c.Session)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, serverutils.ErrUnauthorized) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) OIDCLogin(ctx *fiber.Ctx) error {
	var req dto.OIDCLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.OIDCLogin(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

// Logout destroys whatever session the header names. The header is optional
// and an unknown or absent token still succeeds.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	token := ctx.Get(serverutils.HeaderSessionId)
	if token != "" {
		if err := c.authService.Logout(ctx.Context(), token); err != nil {
			return err
		}
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out successfully", nil))
}

// Session echoes the authenticated user, letting clients restore state after
// a page reload.
func (c *authController) Session(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)
	res := dto.UserResponse{
		Id:    user.Id,
		Email: user.Email,
		Name:  user.Name,
	}
	return ctx.JSON(serverutils.SuccessResponse("Session active", res))
}
