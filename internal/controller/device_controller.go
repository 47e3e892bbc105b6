package controller

import (
	"errors"

	"edge-ai-be/internal/pkg/serverutils"
	"edge-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDeviceController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Connect(ctx *fiber.Ctx) error
	Disconnect(ctx *fiber.Ctx) error
	Scan(ctx *fiber.Ctx) error
}

type deviceController struct {
	deviceService service.IDeviceService
	sessionMW     fiber.Handler
}

func NewDeviceController(deviceService service.IDeviceService, sessionMW fiber.Handler) IDeviceController {
	return &deviceController{
		deviceService: deviceService,
		sessionMW:     sessionMW,
	}
}

func (c *deviceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/devices")
	h.Use(c.sessionMW)
	h.Get("", c.List)
	h.Post("scan", c.Scan)
	h.Post(":id/connect", c.Connect)
	h.Post(":id/disconnect", c.Disconnect)
}

func (c *deviceController) List(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)

	res, err := c.deviceService.ListOwned(ctx.Context(), user.Id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Devices retrieved", res))
}

func (c *deviceController) Connect(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)
	deviceId := ctx.Params("id")

	err := c.deviceService.Connect(ctx.Context(), user.Id, deviceId)
	if err != nil {
		if errors.Is(err, service.ErrDeviceNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Device not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Device connected successfully", nil))
}

func (c *deviceController) Disconnect(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)
	deviceId := ctx.Params("id")

	err := c.deviceService.Disconnect(ctx.Context(), user.Id, deviceId)
	if err != nil {
		if errors.Is(err, service.ErrDeviceNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Device not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Device disconnected", nil))
}

func (c *deviceController) Scan(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)

	res, err := c.deviceService.Scan(ctx.Context(), user.Id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Scan completed", res))
}
