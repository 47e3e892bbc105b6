package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Device struct {
	Id        string             `gorm:"type:varchar(255);primaryKey"`
	Name      string             `gorm:"type:varchar(255);not null"`
	Type      string             `gorm:"type:varchar(50);not null"`
	IP        string             `gorm:"column:ip;type:varchar(45);not null"`
	Status    string             `gorm:"type:varchar(20);not null;default:'disconnected'"`
	Specs     datatypes.JSONMap  `gorm:"type:jsonb"`
	UserId    *uuid.UUID         `gorm:"type:uuid;index"`
	User      *User              `gorm:"foreignKey:UserId"`
	LastSeen  time.Time          `gorm:"autoCreateTime"`
	CreatedAt time.Time          `gorm:"autoCreateTime"`
}

func (Device) TableName() string {
	return "devices"
}
