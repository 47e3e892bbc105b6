package implementation

import (
	"context"
	"errors"

	"edge-ai-be/internal/entity"
	"edge-ai-be/internal/mapper"
	"edge-ai-be/internal/model"
	"edge-ai-be/internal/repository/contract"
	"edge-ai-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeviceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DeviceMapper
}

func NewDeviceRepository(db *gorm.DB) contract.DeviceRepository {
	return &DeviceRepositoryImpl{
		db:     db,
		mapper: mapper.NewDeviceMapper(),
	}
}

func (r *DeviceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DeviceRepositoryImpl) Create(ctx context.Context, device *entity.Device) error {
	modelDevice := r.mapper.ToModel(device)
	if err := r.db.WithContext(ctx).Create(modelDevice).Error; err != nil {
		return err
	}
	*device = *r.mapper.ToEntity(modelDevice)
	return nil
}

func (r *DeviceRepositoryImpl) FindById(ctx context.Context, id string) (*entity.Device, error) {
	var modelDevice model.Device
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&modelDevice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelDevice), nil
}

func (r *DeviceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Device, error) {
	var modelDevices []*model.Device
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelDevices).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelDevices), nil
}

func (r *DeviceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Device{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DeviceRepositoryImpl) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*entity.Device, error) {
	if len(fields) > 0 {
		result := r.db.WithContext(ctx).Model(&model.Device{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, nil
		}
	}
	return r.FindById(ctx, id)
}

func (r *DeviceRepositoryImpl) UpdateStatus(ctx context.Context, id string, status entity.DeviceStatus) (*entity.Device, error) {
	return r.UpdateFields(ctx, id, map[string]interface{}{"status": string(status)})
}

func (r *DeviceRepositoryImpl) AssignToUser(ctx context.Context, id string, userId uuid.UUID) (*entity.Device, error) {
	return r.UpdateFields(ctx, id, map[string]interface{}{"user_id": userId})
}

func (r *DeviceRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Device{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
