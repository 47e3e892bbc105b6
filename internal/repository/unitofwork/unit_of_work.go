package unitofwork

import (
	"context"

	"edge-ai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	DeviceRepository() contract.DeviceRepository
	ChatMessageRepository() contract.ChatMessageRepository
	AdminServiceRepository() contract.AdminServiceRepository
}
