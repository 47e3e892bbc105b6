package controller

import (
	"errors"

	"edge-ai-be/internal/dto"
	"edge-ai-be/internal/pkg/serverutils"
	"edge-ai-be/internal/service"
	"edge-ai-be/pkg/upload"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	images      *upload.ImageValidator
	sessionMW   fiber.Handler
}

func NewChatController(chatService service.IChatService, images *upload.ImageValidator, sessionMW fiber.Handler) IChatController {
	return &chatController{
		chatService: chatService,
		images:      images,
		sessionMW:   sessionMW,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Use(c.sessionMW)
	h.Get("messages", c.History)
	h.Post("message", c.Send)
}

// Send accepts a multipart form: a required message field, optional image
// attachments, an optional deviceId, and a debug flag.
func (c *chatController) Send(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)

	req := dto.SendMessageRequest{
		Message: ctx.FormValue("message"),
		Debug:   ctx.FormValue("debug") == "true",
	}
	if deviceId := ctx.FormValue("deviceId"); deviceId != "" {
		req.DeviceId = &deviceId
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if form, err := ctx.MultipartForm(); err == nil && form != nil {
		urls, err := c.images.EncodeAll(form.File["images"])
		if err != nil {
			if errors.Is(err, upload.ErrTooLarge) {
				return fiber.NewError(fiber.StatusRequestEntityTooLarge, "Image exceeds the maximum allowed size")
			}
			if errors.Is(err, upload.ErrInvalidType) {
				return fiber.NewError(fiber.StatusBadRequest, "Unsupported image type")
			}
			return err
		}
		req.Images = urls
	}

	res, err := c.chatService.Send(ctx.Context(), user.Id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Message processed", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)

	var deviceId *string
	if q := ctx.Query("deviceId"); q != "" {
		deviceId = &q
	}

	res, err := c.chatService.History(ctx.Context(), user.Id, deviceId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Messages retrieved", res))
}
