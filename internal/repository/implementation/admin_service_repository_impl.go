package implementation

import (
	"context"
	"errors"

	"edge-ai-be/internal/entity"
	"edge-ai-be/internal/mapper"
	"edge-ai-be/internal/model"
	"edge-ai-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminServiceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdminServiceMapper
}

func NewAdminServiceRepository(db *gorm.DB) contract.AdminServiceRepository {
	return &AdminServiceRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdminServiceMapper(),
	}
}

func (r *AdminServiceRepositoryImpl) Create(ctx context.Context, service *entity.AdminService) error {
	modelService := r.mapper.ToModel(service)
	if err := r.db.WithContext(ctx).Create(modelService).Error; err != nil {
		return err
	}
	*service = *r.mapper.ToEntity(modelService)
	return nil
}

func (r *AdminServiceRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.AdminService, error) {
	var modelService model.AdminService
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&modelService).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelService), nil
}

func (r *AdminServiceRepositoryImpl) FindAll(ctx context.Context) ([]*entity.AdminService, error) {
	var modelServices []*model.AdminService
	if err := r.db.WithContext(ctx).Find(&modelServices).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(modelServices), nil
}

func (r *AdminServiceRepositoryImpl) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.AdminService, error) {
	if len(fields) > 0 {
		result := r.db.WithContext(ctx).Model(&model.AdminService{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, nil
		}
	}
	return r.FindById(ctx, id)
}

func (r *AdminServiceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AdminService{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
