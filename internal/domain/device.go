package domain

import "time"

type DeviceType string

const (
	DeviceTypeAndroid DeviceType = "android"
	DeviceTypeIOS     DeviceType = "ios"
)

// Device 用户注册过的推送终端
type Device struct {
	ID             int64
	UserID         int64
	RegistrationID string
	DeviceID       string
	DeviceName     string
	DeviceType     DeviceType
	CreatedOn      time.Time
	UpdatedOn      time.Time
}
