package store

import (
	"context"
	"sync"

	"cobalt/internal/account/models"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
)

// ClientDevices keeps client devices in memory, keyed by fingerprint.
type ClientDevices struct {
	mu            sync.RWMutex
	devices       map[id.ClientDeviceID]*models.ClientDevice
	byFingerprint map[string]id.ClientDeviceID
	pushTokens    map[id.ClientDeviceID][]models.ClientDevicePushToken
	activities    map[id.ClientDeviceID][]models.ClientDeviceActivity
}

func NewClientDevices() *ClientDevices {
	return &ClientDevices{
		devices:       make(map[id.ClientDeviceID]*models.ClientDevice),
		byFingerprint: make(map[string]id.ClientDeviceID),
		pushTokens:    make(map[id.ClientDeviceID][]models.ClientDevicePushToken),
		activities:    make(map[id.ClientDeviceID][]models.ClientDeviceActivity),
	}
}

// Upsert stores device under its fingerprint. A device already registered with the same
// fingerprint keeps its ID and creation time; the stored device is returned.
func (s *ClientDevices) Upsert(_ context.Context, device *models.ClientDevice) (*models.ClientDevice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *device
	if existingID, ok := s.byFingerprint[device.Fingerprint]; ok {
		existing := s.devices[existingID]
		cp.ID = existing.ID
		cp.Created = existing.Created
	}
	s.devices[cp.ID] = &cp
	s.byFingerprint[cp.Fingerprint] = cp.ID
	out := cp
	return &out, nil
}

func (s *ClientDevices) FindByID(_ context.Context, deviceID id.ClientDeviceID) (*models.ClientDevice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.devices[deviceID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *ClientDevices) AddPushToken(_ context.Context, token models.ClientDevicePushToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pushTokens[token.ClientDeviceID] = append(s.pushTokens[token.ClientDeviceID], token)
	return nil
}

func (s *ClientDevices) AddActivity(_ context.Context, activity models.ClientDeviceActivity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities[activity.ClientDeviceID] = append(s.activities[activity.ClientDeviceID], activity)
	return nil
}

func (s *ClientDevices) PushTokens(_ context.Context, deviceID id.ClientDeviceID) ([]models.ClientDevicePushToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ClientDevicePushToken(nil), s.pushTokens[deviceID]...), nil
}

func (s *ClientDevices) Activities(_ context.Context, deviceID id.ClientDeviceID) ([]models.ClientDeviceActivity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ClientDeviceActivity(nil), s.activities[deviceID]...), nil
}
