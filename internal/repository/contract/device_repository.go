package contract

import (
	"context"

	"edge-ai-be/internal/entity"
	"edge-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DeviceRepository interface {
	Create(ctx context.Context, device *entity.Device) error
	FindById(ctx context.Context, id string) (*entity.Device, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Device, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpdateFields applies only the supplied columns. Returns the updated
	// device, or nil when no row matched.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*entity.Device, error)
	UpdateStatus(ctx context.Context, id string, status entity.DeviceStatus) (*entity.Device, error)
	AssignToUser(ctx context.Context, id string, userId uuid.UUID) (*entity.Device, error)

	// Delete reports whether a row existed.
	Delete(ctx context.Context, id string) (bool, error)
}
