package service

import (
	"context"
	"time"

	"edge-ai-be/internal/dto"
	"edge-ai-be/internal/entity"
	"edge-ai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type IAdminService interface {
	CreateDevice(ctx context.Context, req *dto.DeviceCreateRequest) (*dto.DeviceResponse, error)
	UpdateDevice(ctx context.Context, id string, req *dto.DeviceUpdateRequest) (*dto.DeviceResponse, error)
	DeleteDevice(ctx context.Context, id string) error

	ListServices(ctx context.Context) ([]*dto.AdminServiceResponse, error)
	CreateService(ctx context.Context, req *dto.AdminServiceCreateRequest) (*dto.AdminServiceResponse, error)
	UpdateService(ctx context.Context, id uuid.UUID, req *dto.AdminServiceUpdateRequest) (*dto.AdminServiceResponse, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
	}
}

// CreateDevice registers a new device in the disconnected state. Duplicate
// ids are rejected rather than overwritten.
func (s *adminService) CreateDevice(ctx context.Context, req *dto.DeviceCreateRequest) (*dto.DeviceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.DeviceRepository().FindById(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDeviceExists
	}

	device := &entity.Device{
		Id:        req.Id,
		Name:      req.Name,
		Type:      req.Type,
		IP:        req.IP,
		Status:    entity.DeviceStatusDisconnected,
		Specs:     req.Specs,
		LastSeen:  time.Now(),
		CreatedAt: time.Now(),
	}
	if err := uow.DeviceRepository().Create(ctx, device); err != nil {
		return nil, err
	}

	return deviceToResponse(device), nil
}

func (s *adminService) UpdateDevice(ctx context.Context, id string, req *dto.DeviceUpdateRequest) (*dto.DeviceResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.IP != nil {
		fields["ip"] = *req.IP
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Specs != nil {
		fields["specs"] = datatypes.JSONMap(req.Specs)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	device, err := uow.DeviceRepository().UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, ErrDeviceNotFound
	}
	return deviceToResponse(device), nil
}

func (s *adminService) DeleteDevice(ctx context.Context, id string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	ok, err := uow.DeviceRepository().Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrDeviceNotFound
	}
	return nil
}

func (s *adminService) ListServices(ctx context.Context) ([]*dto.AdminServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	services, err := uow.AdminServiceRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AdminServiceResponse, 0, len(services))
	for _, svc := range services {
		res = append(res, adminServiceToResponse(svc))
	}
	return res, nil
}

func (s *adminService) CreateService(ctx context.Context, req *dto.AdminServiceCreateRequest) (*dto.AdminServiceResponse, error) {
	status := entity.ServiceStatusActive
	if req.Status != "" {
		status = entity.ServiceStatus(req.Status)
	}

	svc := &entity.AdminService{
		Id:        uuid.New(),
		Name:      req.Name,
		Type:      req.Type,
		Endpoint:  req.Endpoint,
		Status:    status,
		Config:    req.Config,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AdminServiceRepository().Create(ctx, svc); err != nil {
		return nil, err
	}
	return adminServiceToResponse(svc), nil
}

func (s *adminService) UpdateService(ctx context.Context, id uuid.UUID, req *dto.AdminServiceUpdateRequest) (*dto.AdminServiceResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Endpoint != nil {
		fields["endpoint"] = *req.Endpoint
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Config != nil {
		fields["config"] = datatypes.JSONMap(req.Config)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	svc, err := uow.AdminServiceRepository().UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return adminServiceToResponse(svc), nil
}

func (s *adminService) DeleteService(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	ok, err := uow.AdminServiceRepository().Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrServiceNotFound
	}
	return nil
}

func adminServiceToResponse(svc *entity.AdminService) *dto.AdminServiceResponse {
	return &dto.AdminServiceResponse{
		Id:        svc.Id,
		Name:      svc.Name,
		Type:      svc.Type,
		Endpoint:  svc.Endpoint,
		Status:    string(svc.Status),
		Config:    svc.Config,
		CreatedAt: svc.CreatedAt,
	}
}
