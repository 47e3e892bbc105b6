package mapper

import (
	"edge-ai-be/internal/entity"
	"edge-ai-be/internal/model"

	"gorm.io/datatypes"
)

type DeviceMapper struct{}

func NewDeviceMapper() *DeviceMapper {
	return &DeviceMapper{}
}

func (m *DeviceMapper) ToEntity(d *model.Device) *entity.Device {
	if d == nil {
		return nil
	}
	return &entity.Device{
		Id:        d.Id,
		Name:      d.Name,
		Type:      d.Type,
		IP:        d.IP,
		Status:    entity.DeviceStatus(d.Status),
		Specs:     map[string]interface{}(d.Specs),
		UserId:    d.UserId,
		LastSeen:  d.LastSeen,
		CreatedAt: d.CreatedAt,
	}
}

func (m *DeviceMapper) ToModel(d *entity.Device) *model.Device {
	if d == nil {
		return nil
	}
	return &model.Device{
		Id:        d.Id,
		Name:      d.Name,
		Type:      d.Type,
		IP:        d.IP,
		Status:    string(d.Status),
		Specs:     datatypes.JSONMap(d.Specs),
		UserId:    d.UserId,
		LastSeen:  d.LastSeen,
		CreatedAt: d.CreatedAt,
	}
}

func (m *DeviceMapper) ToEntities(devices []*model.Device) []*entity.Device {
	entities := make([]*entity.Device, len(devices))
	for i, d := range devices {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
