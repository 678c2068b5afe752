package responses

import (
	"context"
	"fmt"
	"time"

	"cobalt/internal/account/models"
	"cobalt/internal/format"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/supplement"
)

// ClientDeviceSupplement widens a ClientDeviceResponse.
type ClientDeviceSupplement string

const (
	SupplementPushTokens ClientDeviceSupplement = "CLIENT_DEVICE_PUSH_TOKENS"
	SupplementActivities ClientDeviceSupplement = "CLIENT_DEVICE_ACTIVITIES"
)

// ClientDeviceSupplements lists every ClientDeviceSupplement, for parsing.
var ClientDeviceSupplements = []ClientDeviceSupplement{SupplementPushTokens, SupplementActivities}

// ClientDeviceLookups loads a device's nested lists.
type ClientDeviceLookups interface {
	PushTokens(ctx context.Context, deviceID id.ClientDeviceID) ([]models.ClientDevicePushToken, error)
	Activities(ctx context.Context, deviceID id.ClientDeviceID) ([]models.ClientDeviceActivity, error)
}

type ClientDeviceResponse struct {
	ClientDeviceID         string                           `json:"clientDeviceId"`
	ClientDeviceTypeID     string                           `json:"clientDeviceTypeId"`
	Fingerprint            string                           `json:"fingerprint"`
	OperatingSystemName    *string                          `json:"operatingSystemName,omitempty"`
	OperatingSystemVersion *string                          `json:"operatingSystemVersion,omitempty"`
	Model                  *string                          `json:"model,omitempty"`
	Brand                  *string                          `json:"brand,omitempty"`
	Created                time.Time                        `json:"created"`
	CreatedDescription     string                           `json:"createdDescription"`
	LastUpdated            time.Time                        `json:"lastUpdated"`
	LastUpdatedDescription string                           `json:"lastUpdatedDescription"`
	ClientDevicePushTokens []*ClientDevicePushTokenResponse `json:"clientDevicePushTokens,omitempty"`
	ClientDeviceActivities []*ClientDeviceActivityResponse  `json:"clientDeviceActivities,omitempty"`
}

type ClientDevicePushTokenResponse struct {
	PushTokenTypeID    string    `json:"pushTokenTypeId"`
	PushToken          string    `json:"pushToken"`
	Created            time.Time `json:"created"`
	CreatedDescription string    `json:"createdDescription"`
}

type ClientDeviceActivityResponse struct {
	ClientDeviceActivityID string    `json:"clientDeviceActivityId"`
	AccountID              *string   `json:"accountId,omitempty"`
	Created                time.Time `json:"created"`
	CreatedDescription     string    `json:"createdDescription"`
}

func NewClientDeviceResponse(
	ctx context.Context,
	f *format.Formatter,
	device *models.ClientDevice,
	lookups ClientDeviceLookups,
	supplements supplement.Set[ClientDeviceSupplement],
) (*ClientDeviceResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if device == nil {
		return nil, dErrors.Required("client device")
	}
	if lookups == nil {
		return nil, dErrors.Required("client device lookups")
	}

	r := &ClientDeviceResponse{
		ClientDeviceID:         device.ID.String(),
		ClientDeviceTypeID:     device.TypeID,
		Fingerprint:            device.Fingerprint,
		OperatingSystemName:    device.OperatingSystemName,
		OperatingSystemVersion: device.OperatingSystemVersion,
		Model:                  device.Model,
		Brand:                  device.Brand,
		Created:                device.Created,
		CreatedDescription:     timestamp(f, device.Created),
		LastUpdated:            device.LastUpdated,
		LastUpdatedDescription: timestamp(f, device.LastUpdated),
	}

	if supplements.Has(SupplementPushTokens) {
		tokens, err := lookups.PushTokens(ctx, device.ID)
		if err != nil {
			return nil, fmt.Errorf("load push tokens: %w", err)
		}
		r.ClientDevicePushTokens = make([]*ClientDevicePushTokenResponse, 0, len(tokens))
		for _, t := range tokens {
			r.ClientDevicePushTokens = append(r.ClientDevicePushTokens, &ClientDevicePushTokenResponse{
				PushTokenTypeID:    t.PushTokenTypeID,
				PushToken:          t.PushToken,
				Created:            t.Created,
				CreatedDescription: timestamp(f, t.Created),
			})
		}
	}

	if supplements.Has(SupplementActivities) {
		activities, err := lookups.Activities(ctx, device.ID)
		if err != nil {
			return nil, fmt.Errorf("load device activities: %w", err)
		}
		r.ClientDeviceActivities = make([]*ClientDeviceActivityResponse, 0, len(activities))
		for _, a := range activities {
			r.ClientDeviceActivities = append(r.ClientDeviceActivities, &ClientDeviceActivityResponse{
				ClientDeviceActivityID: a.ClientDeviceActivityID,
				AccountID:              id.OptionalString(a.AccountID),
				Created:                a.Created,
				CreatedDescription:     timestamp(f, a.Created),
			})
		}
	}
	return r, nil
}

func timestamp(f *format.Formatter, t time.Time) string {
	return f.FormatTimestamp(t, format.StyleDefault, format.StyleDefault)
}
