package mapper

import (
	"edge-ai-be/internal/entity"
	"edge-ai-be/internal/model"

	"gorm.io/datatypes"
)

type AdminServiceMapper struct{}

func NewAdminServiceMapper() *AdminServiceMapper {
	return &AdminServiceMapper{}
}

func (m *AdminServiceMapper) ToEntity(s *model.AdminService) *entity.AdminService {
	if s == nil {
		return nil
	}
	return &entity.AdminService{
		Id:        s.Id,
		Name:      s.Name,
		Type:      s.Type,
		Endpoint:  s.Endpoint,
		Status:    entity.ServiceStatus(s.Status),
		Config:    map[string]interface{}(s.Config),
		CreatedAt: s.CreatedAt,
	}
}

func (m *AdminServiceMapper) ToModel(s *entity.AdminService) *model.AdminService {
	if s == nil {
		return nil
	}
	return &model.AdminService{
		Id:        s.Id,
		Name:      s.Name,
		Type:      s.Type,
		Endpoint:  s.Endpoint,
		Status:    string(s.Status),
		Config:    datatypes.JSONMap(s.Config),
		CreatedAt: s.CreatedAt,
	}
}

func (m *AdminServiceMapper) ToEntities(services []*model.AdminService) []*entity.AdminService {
	entities := make([]*entity.AdminService, len(services))
	for i, s := range services {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
