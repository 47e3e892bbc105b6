package controller

import (
	"errors"

	"edge-ai-be/internal/dto"
	"edge-ai-be/internal/pkg/serverutils"
	"edge-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	ListDevices(ctx *fiber.Ctx) error
	CreateDevice(ctx *fiber.Ctx) error
	UpdateDevice(ctx *fiber.Ctx) error
	DeleteDevice(ctx *fiber.Ctx) error
	ListServices(ctx *fiber.Ctx) error
	CreateService(ctx *fiber.Ctx) error
	UpdateService(ctx *fiber.Ctx) error
	DeleteService(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService  service.IAdminService
	deviceService service.IDeviceService
	sessionMW     fiber.Handler
}

func NewAdminController(
	adminService service.IAdminService,
	deviceService service.IDeviceService,
	sessionMW fiber.Handler,
) IAdminController {
	return &adminController{
		adminService:  adminService,
		deviceService: deviceService,
		sessionMW:     sessionMW,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(c.sessionMW)
	h.Get("devices", c.ListDevices)
	h.Post("devices", c.CreateDevice)
	h.Patch("devices/:id", c.UpdateDevice)
	h.Delete("devices/:id", c.DeleteDevice)
	h.Get("services", c.ListServices)
	h.Post("services", c.CreateService)
	h.Patch("services/:id", c.UpdateService)
	h.Delete("services/:id", c.DeleteService)
}

func (c *adminController) ListDevices(ctx *fiber.Ctx) error {
	res, err := c.deviceService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Devices retrieved", res))
}

func (c *adminController) CreateDevice(ctx *fiber.Ctx) error {
	var req dto.DeviceCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.CreateDevice(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDeviceExists) {
			return fiber.NewError(fiber.StatusBadRequest, "Device already registered")
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Device created", res))
}

func (c *adminController) UpdateDevice(ctx *fiber.Ctx) error {
	var req dto.DeviceUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.adminService.UpdateDevice(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrDeviceNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Device not found")
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Device updated", res))
}

func (c *adminController) DeleteDevice(ctx *fiber.Ctx) error {
	err := c.adminService.DeleteDevice(ctx.Context(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrDeviceNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Device not found")
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Device deleted", nil))
}

func (c *adminController) ListServices(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListServices(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Services retrieved", res))
}

func (c *adminController) CreateService(ctx *fiber.Ctx) error {
	var req dto.AdminServiceCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.CreateService(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Service created", res))
}

func (c *adminController) UpdateService(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid service id")
	}

	var req dto.AdminServiceUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.adminService.UpdateService(ctx.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Service not found")
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Service updated", res))
}

func (c *adminController) DeleteService(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid service id")
	}

	err = c.adminService.DeleteService(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Service not found")
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Service deleted", nil))
}
