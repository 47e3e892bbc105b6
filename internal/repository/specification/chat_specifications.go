package specification

import "gorm.io/gorm"

type ForDevice struct {
	DeviceId string
}

func (s ForDevice) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("device_id = ?", s.DeviceId)
}

// OrderByCreatedAsc keeps conversation history in non-decreasing creation order.
type OrderByCreatedAsc struct{}

func (s OrderByCreatedAsc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}
