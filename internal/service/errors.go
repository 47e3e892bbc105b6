package service

import "errors"

var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrDeviceExists    = errors.New("device already registered")
	ErrServiceNotFound = errors.New("service not found")
)
