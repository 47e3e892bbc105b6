package service

import (
	"context"
	"time"

	"edge-ai-be/internal/dto"
	"edge-ai-be/internal/entity"
	"edge-ai-be/internal/pkg/logger"
	"edge-ai-be/internal/repository/specification"
	"edge-ai-be/internal/repository/unitofwork"
	"edge-ai-be/pkg/events"

	"github.com/google/uuid"
)

type IDeviceService interface {
	List(ctx context.Context) ([]*dto.DeviceResponse, error)
	ListOwned(ctx context.Context, userId uuid.UUID) ([]*dto.DeviceResponse, error)
	Connect(ctx context.Context, userId uuid.UUID, deviceId string) error
	Disconnect(ctx context.Context, userId uuid.UUID, deviceId string) error
	Scan(ctx context.Context, userId uuid.UUID) (*dto.DeviceScanResponse, error)
}

type deviceService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *events.Publisher
	log            logger.ILogger
	connectDelay   time.Duration
	scanDelay      time.Duration
}

func NewDeviceService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *events.Publisher,
	log logger.ILogger,
	connectDelay time.Duration,
	scanDelay time.Duration,
) IDeviceService {
	return &deviceService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		log:            log,
		connectDelay:   connectDelay,
		scanDelay:      scanDelay,
	}
}

// simulateWork imitates hardware latency without blocking past request
// cancellation.
func simulateWork(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// List returns the whole registry. Used by the admin surface.
func (s *deviceService) List(ctx context.Context) ([]*dto.DeviceResponse, error) {
	return s.find(ctx)
}

// ListOwned returns only the caller's devices.
func (s *deviceService) ListOwned(ctx context.Context, userId uuid.UUID) ([]*dto.DeviceResponse, error) {
	return s.find(ctx, specification.OwnedBy{UserId: userId})
}

func (s *deviceService) find(ctx context.Context, specs ...specification.Specification) ([]*dto.DeviceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	devices, err := uow.DeviceRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.DeviceResponse, 0, len(devices))
	for _, d := range devices {
		res = append(res, deviceToResponse(d))
	}
	return res, nil
}

// Connect marks the device connected and hands ownership to the caller in a
// single transaction, so a crash can never leave a connected device without
// an owner.
func (s *deviceService) Connect(ctx context.Context, userId uuid.UUID, deviceId string) error {
	if err := simulateWork(ctx, s.connectDelay); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	device, err := uow.DeviceRepository().UpdateFields(ctx, deviceId, map[string]interface{}{
		"status":    entity.DeviceStatusConnected,
		"user_id":   userId,
		"last_seen": time.Now(),
	})
	if err != nil {
		return err
	}
	if device == nil {
		return ErrDeviceNotFound
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishDeviceEvent(ctx, events.TypeDeviceConnected, device, userId)
	return nil
}

// Disconnect flips the status back. Ownership is kept so the device still
// shows up in the owner's list and scan count.
func (s *deviceService) Disconnect(ctx context.Context, userId uuid.UUID, deviceId string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	device, err := uow.DeviceRepository().UpdateFields(ctx, deviceId, map[string]interface{}{
		"status":    entity.DeviceStatusDisconnected,
		"last_seen": time.Now(),
	})
	if err != nil {
		return err
	}
	if device == nil {
		return ErrDeviceNotFound
	}

	s.publishDeviceEvent(ctx, events.TypeDeviceDisconnected, device, userId)
	return nil
}

// Scan sweeps the registry and reports how many devices the caller currently
// holds. No discovery happens; the registry is the source of truth.
func (s *deviceService) Scan(ctx context.Context, userId uuid.UUID) (*dto.DeviceScanResponse, error) {
	if err := simulateWork(ctx, s.scanDelay); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.DeviceRepository().Count(ctx, specification.OwnedBy{UserId: userId})
	if err != nil {
		return nil, err
	}

	return &dto.DeviceScanResponse{
		Devices: int(count),
		Message: "Scan completed",
	}, nil
}

func (s *deviceService) publishDeviceEvent(ctx context.Context, eventType string, device *entity.Device, userId uuid.UUID) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"device_id": device.Id,
			"user_id":   userId,
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("device", "failed to publish device event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func deviceToResponse(d *entity.Device) *dto.DeviceResponse {
	return &dto.DeviceResponse{
		Id:       d.Id,
		Name:     d.Name,
		Type:     d.Type,
		Status:   string(d.Status),
		IP:       d.IP,
		Specs:    d.Specs,
		UserId:   d.UserId,
		LastSeen: d.LastSeen,
	}
}
