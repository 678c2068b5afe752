package models

import (
	"strings"

	dErrors "cobalt/pkg/domain-errors"
	s "cobalt/pkg/string"
	"cobalt/pkg/validation"
)

// RegisterClientDeviceRequest is sent by apps on launch. Fields left empty are filled
// from the device headers and User-Agent.
type RegisterClientDeviceRequest struct {
	Fingerprint            string `json:"fingerprint" validate:"omitempty,max=256"`
	ClientDeviceTypeID     string `json:"clientDeviceTypeId" validate:"omitempty,oneof=WEB_BROWSER IOS_APP ANDROID_APP UNKNOWN"`
	AppName                string `json:"appName" validate:"max=100"`
	AppVersion             string `json:"appVersion" validate:"max=50"`
	OperatingSystemName    string `json:"operatingSystemName" validate:"max=100"`
	OperatingSystemVersion string `json:"operatingSystemVersion" validate:"max=50"`
	Model                  string `json:"model" validate:"max=100"`
	Brand                  string `json:"brand" validate:"max=100"`
	PushTokenTypeID        string `json:"pushTokenTypeId" validate:"omitempty,oneof=FCM APNS"`
	PushToken              string `json:"pushToken" validate:"max=4096"`
}

func (r *RegisterClientDeviceRequest) Normalize() {
	s.TrimStrings(&r.Fingerprint, &r.ClientDeviceTypeID, &r.AppName, &r.AppVersion,
		&r.OperatingSystemName, &r.OperatingSystemVersion, &r.Model, &r.Brand,
		&r.PushTokenTypeID, &r.PushToken)
	r.ClientDeviceTypeID = strings.ToUpper(r.ClientDeviceTypeID)
	r.PushTokenTypeID = strings.ToUpper(r.PushTokenTypeID)
}

func (r *RegisterClientDeviceRequest) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	if r.PushToken != "" && r.PushTokenTypeID == "" {
		return dErrors.New(dErrors.CodeValidation, "push_token_type_id is required with push_token")
	}
	return nil
}
