package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatMessage struct {
	Id        uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID                   `gorm:"type:uuid;not null;index:idx_chat_messages_user_created,priority:1"`
	User      *User                       `gorm:"foreignKey:UserId"`
	DeviceId  *string                     `gorm:"type:varchar(255);index"`
	Device    *Device                     `gorm:"foreignKey:DeviceId"`
	Role      string                      `gorm:"type:varchar(20);not null"`
	Content   string                      `gorm:"type:text;not null"`
	Images    datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Debug     datatypes.JSONMap           `gorm:"type:jsonb"`
	CreatedAt time.Time                   `gorm:"autoCreateTime;index:idx_chat_messages_user_created,priority:2"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
