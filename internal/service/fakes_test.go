package service

import (
	"context"
	"sort"
	"time"

	"edge-ai-be/internal/entity"
	"edge-ai-be/internal/repository/contract"
	"edge-ai-be/internal/repository/specification"
	"edge-ai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// In-memory repository doubles. They interpret the same specifications the
// real implementations translate to SQL.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	stored := *user
	r.users[user.Id] = &stored
	return nil
}

func (r *fakeUserRepo) FindById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		found := *u
		return &found, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		if matchUser(u, specs) {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, u := range r.users {
		if matchUser(u, specs) {
			n++
		}
	}
	return n, nil
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		case specification.ById:
			if u.Id != s.Id {
				return false
			}
		}
	}
	return true
}

type fakeDeviceRepo struct {
	devices map[string]*entity.Device
}

func (r *fakeDeviceRepo) Create(ctx context.Context, device *entity.Device) error {
	stored := *device
	r.devices[device.Id] = &stored
	return nil
}

func (r *fakeDeviceRepo) FindById(ctx context.Context, id string) (*entity.Device, error) {
	if d, ok := r.devices[id]; ok {
		found := *d
		return &found, nil
	}
	return nil, nil
}

func (r *fakeDeviceRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Device, error) {
	var res []*entity.Device
	for _, d := range r.devices {
		if matchDevice(d, specs) {
			found := *d
			res = append(res, &found)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Id < res[j].Id })
	return res, nil
}

func (r *fakeDeviceRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, d := range r.devices {
		if matchDevice(d, specs) {
			n++
		}
	}
	return n, nil
}

func (r *fakeDeviceRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*entity.Device, error) {
	d, ok := r.devices[id]
	if !ok {
		return nil, nil
	}
	for column, value := range fields {
		switch column {
		case "status":
			switch v := value.(type) {
			case entity.DeviceStatus:
				d.Status = v
			case string:
				d.Status = entity.DeviceStatus(v)
			}
		case "user_id":
			if value == nil {
				d.UserId = nil
			} else if v, ok := value.(uuid.UUID); ok {
				owner := v
				d.UserId = &owner
			}
		case "last_seen":
			if v, ok := value.(time.Time); ok {
				d.LastSeen = v
			}
		case "name":
			d.Name = value.(string)
		case "type":
			d.Type = value.(string)
		case "ip":
			d.IP = value.(string)
		case "specs":
			if v, ok := value.(datatypes.JSONMap); ok {
				d.Specs = map[string]interface{}(v)
			}
		}
	}
	found := *d
	return &found, nil
}

func (r *fakeDeviceRepo) UpdateStatus(ctx context.Context, id string, status entity.DeviceStatus) (*entity.Device, error) {
	return r.UpdateFields(ctx, id, map[string]interface{}{"status": status})
}

func (r *fakeDeviceRepo) AssignToUser(ctx context.Context, id string, userId uuid.UUID) (*entity.Device, error) {
	return r.UpdateFields(ctx, id, map[string]interface{}{"user_id": userId})
}

func (r *fakeDeviceRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := r.devices[id]; !ok {
		return false, nil
	}
	delete(r.devices, id)
	return true, nil
}

func matchDevice(d *entity.Device, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.OwnedBy:
			if d.UserId == nil || *d.UserId != s.UserId {
				return false
			}
		}
	}
	return true
}

type fakeChatMessageRepo struct {
	messages []*entity.ChatMessage
}

func (r *fakeChatMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	stored := *message
	r.messages = append(r.messages, &stored)
	return nil
}

func (r *fakeChatMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var res []*entity.ChatMessage
	ordered := false
	for _, spec := range specs {
		if _, ok := spec.(specification.OrderByCreatedAsc); ok {
			ordered = true
		}
	}
	for _, m := range r.messages {
		if matchChatMessage(m, specs) {
			found := *m
			res = append(res, &found)
		}
	}
	if ordered {
		sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	}
	return res, nil
}

func (r *fakeChatMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, m := range r.messages {
		if matchChatMessage(m, specs) {
			n++
		}
	}
	return n, nil
}

func matchChatMessage(m *entity.ChatMessage, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.OwnedBy:
			if m.UserId != s.UserId {
				return false
			}
		case specification.ForDevice:
			if m.DeviceId == nil || *m.DeviceId != s.DeviceId {
				return false
			}
		}
	}
	return true
}

type fakeAdminServiceRepo struct {
	services map[uuid.UUID]*entity.AdminService
}

func (r *fakeAdminServiceRepo) Create(ctx context.Context, svc *entity.AdminService) error {
	stored := *svc
	r.services[svc.Id] = &stored
	return nil
}

func (r *fakeAdminServiceRepo) FindById(ctx context.Context, id uuid.UUID) (*entity.AdminService, error) {
	if svc, ok := r.services[id]; ok {
		found := *svc
		return &found, nil
	}
	return nil, nil
}

func (r *fakeAdminServiceRepo) FindAll(ctx context.Context) ([]*entity.AdminService, error) {
	var res []*entity.AdminService
	for _, svc := range r.services {
		found := *svc
		res = append(res, &found)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

func (r *fakeAdminServiceRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.AdminService, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	for column, value := range fields {
		switch column {
		case "name":
			svc.Name = value.(string)
		case "type":
			svc.Type = value.(string)
		case "endpoint":
			if v, ok := value.(string); ok {
				endpoint := v
				svc.Endpoint = &endpoint
			}
		case "status":
			if v, ok := value.(string); ok {
				svc.Status = entity.ServiceStatus(v)
			}
		case "config":
			if v, ok := value.(datatypes.JSONMap); ok {
				svc.Config = map[string]interface{}(v)
			}
		}
	}
	found := *svc
	return &found, nil
}

func (r *fakeAdminServiceRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.services[id]; !ok {
		return false, nil
	}
	delete(r.services, id)
	return true, nil
}

// fakeUnitOfWork records transaction lifecycle calls so tests can assert
// commit and rollback behavior.
type fakeUnitOfWork struct {
	users    *fakeUserRepo
	devices  *fakeDeviceRepo
	chats    *fakeChatMessageRepo
	services *fakeAdminServiceRepo

	begun      bool
	committed  bool
	rolledBack bool
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.begun = true
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.committed = true
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	if !u.committed {
		u.rolledBack = true
	}
	return nil
}

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository { return u.users }

func (u *fakeUnitOfWork) DeviceRepository() contract.DeviceRepository { return u.devices }

func (u *fakeUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository { return u.chats }

func (u *fakeUnitOfWork) AdminServiceRepository() contract.AdminServiceRepository { return u.services }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{
		uow: &fakeUnitOfWork{
			users:    &fakeUserRepo{users: map[uuid.UUID]*entity.User{}},
			devices:  &fakeDeviceRepo{devices: map[string]*entity.Device{}},
			chats:    &fakeChatMessageRepo{},
			services: &fakeAdminServiceRepo{services: map[uuid.UUID]*entity.AdminService{}},
		},
	}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
