package contract

import (
	"context"

	"edge-ai-be/internal/entity"

	"github.com/google/uuid"
)

type AdminServiceRepository interface {
	Create(ctx context.Context, service *entity.AdminService) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.AdminService, error)
	FindAll(ctx context.Context) ([]*entity.AdminService, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.AdminService, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
