package models

import (
	"time"

	id "cobalt/pkg/domain"
)

// ClientDevice is a browser or app install that has talked to the API.
type ClientDevice struct {
	ID                     id.ClientDeviceID `json:"id"`
	TypeID                 string            `json:"type_id"`
	Fingerprint            string            `json:"fingerprint"`
	AppName                *string           `json:"app_name,omitempty"`
	AppVersion             *string           `json:"app_version,omitempty"`
	OperatingSystemName    *string           `json:"operating_system_name,omitempty"`
	OperatingSystemVersion *string           `json:"operating_system_version,omitempty"`
	Model                  *string           `json:"model,omitempty"`
	Brand                  *string           `json:"brand,omitempty"`
	Created                time.Time         `json:"created"`
	LastUpdated            time.Time         `json:"last_updated"`
}

// ClientDevicePushToken is a push notification token registered by a device.
type ClientDevicePushToken struct {
	ClientDeviceID  id.ClientDeviceID `json:"client_device_id"`
	PushTokenTypeID string            `json:"push_token_type_id"`
	PushToken       string            `json:"push_token"`
	Created         time.Time         `json:"created"`
}

// ClientDeviceActivity records something a device did, such as opening the app.
type ClientDeviceActivity struct {
	ClientDeviceID         id.ClientDeviceID `json:"client_device_id"`
	AccountID              *id.AccountID     `json:"account_id,omitempty"`
	ClientDeviceActivityID string            `json:"client_device_activity_id"`
	Created                time.Time         `json:"created"`
}
