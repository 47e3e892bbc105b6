package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AdminService struct {
	Id        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string            `gorm:"type:varchar(255);not null"`
	Type      string            `gorm:"type:varchar(50);not null"`
	Endpoint  *string           `gorm:"type:varchar(500)"`
	Status    string            `gorm:"type:varchar(20);not null;default:'active'"`
	Config    datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"autoCreateTime"`
}

func (AdminService) TableName() string {
	return "admin_services"
}
