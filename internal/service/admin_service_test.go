package service

import (
	"context"
	"testing"

	"edge-ai-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateDeviceDefaultsToDisconnected(t *testing.T) {
	svc := NewAdminService(newFakeFactory())

	res, err := svc.CreateDevice(context.Background(), &dto.DeviceCreateRequest{
		Id:   "ncs-001",
		Name: "Intel NCS2",
		Type: "ncs",
		IP:   "192.168.1.103",
	})
	assert.NoError(t, err)
	assert.Equal(t, "disconnected", res.Status)
	assert.Nil(t, res.UserId)
}

func TestCreateDeviceRejectsDuplicateId(t *testing.T) {
	svc := NewAdminService(newFakeFactory())

	req := &dto.DeviceCreateRequest{Id: "rpi-001", Name: "Pi", Type: "raspberry-pi", IP: "192.168.1.100"}
	_, err := svc.CreateDevice(context.Background(), req)
	assert.NoError(t, err)

	_, err = svc.CreateDevice(context.Background(), req)
	assert.ErrorIs(t, err, ErrDeviceExists)
}

func TestUpdateDeviceAppliesOnlySuppliedFields(t *testing.T) {
	svc := NewAdminService(newFakeFactory())

	_, err := svc.CreateDevice(context.Background(), &dto.DeviceCreateRequest{
		Id:   "rpi-001",
		Name: "Pi",
		Type: "raspberry-pi",
		IP:   "192.168.1.100",
	})
	assert.NoError(t, err)

	name := "Pi Renamed"
	res, err := svc.UpdateDevice(context.Background(), "rpi-001", &dto.DeviceUpdateRequest{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "Pi Renamed", res.Name)
	assert.Equal(t, "raspberry-pi", res.Type)
	assert.Equal(t, "192.168.1.100", res.IP)
}

func TestUpdateDeviceNotFound(t *testing.T) {
	svc := NewAdminService(newFakeFactory())

	name := "nope"
	_, err := svc.UpdateDevice(context.Background(), "ghost-001", &dto.DeviceUpdateRequest{Name: &name})
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestDeleteDevice(t *testing.T) {
	factory := newFakeFactory()
	svc := NewAdminService(factory)

	_, err := svc.CreateDevice(context.Background(), &dto.DeviceCreateRequest{
		Id:   "rpi-001",
		Name: "Pi",
		Type: "raspberry-pi",
		IP:   "192.168.1.100",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.DeleteDevice(context.Background(), "rpi-001"))
	assert.Empty(t, factory.uow.devices.devices)

	err = svc.DeleteDevice(context.Background(), "rpi-001")
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestServiceRegistryLifecycle(t *testing.T) {
	svc := NewAdminService(newFakeFactory())

	created, err := svc.CreateService(context.Background(), &dto.AdminServiceCreateRequest{
		Name: "inference-gateway",
		Type: "gateway",
	})
	assert.NoError(t, err)
	assert.Equal(t, "active", created.Status)
	assert.NotEqual(t, uuid.Nil, created.Id)

	status := "inactive"
	updated, err := svc.UpdateService(context.Background(), created.Id, &dto.AdminServiceUpdateRequest{Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, "inactive", updated.Status)
	assert.Equal(t, "inference-gateway", updated.Name)

	listed, err := svc.ListServices(context.Background())
	assert.NoError(t, err)
	assert.Len(t, listed, 1)

	assert.NoError(t, svc.DeleteService(context.Background(), created.Id))
	err = svc.DeleteService(context.Background(), created.Id)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUpdateServiceNotFound(t *testing.T) {
	svc := NewAdminService(newFakeFactory())

	name := "nope"
	_, err := svc.UpdateService(context.Background(), uuid.New(), &dto.AdminServiceUpdateRequest{Name: &name})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
