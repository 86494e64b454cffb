// Package entity contains the core business objects of the project.
package entity

import "time"

// DeviceBinding is the persisted (device identifier, platform) pair of a restricted account.
// It is provisioned out of band and never created by the auth core.
type DeviceBinding struct {
	DeviceID  string    `json:"device_id"`
	Platform  Platform  `json:"platform"` // android or ios
	CreatedAt time.Time `json:"created_at"`
}

// Matches compares the bound identifier with a supplied one by exact string equality.
func (b *DeviceBinding) Matches(deviceID string) bool {
	return b != nil && b.DeviceID != "" && b.DeviceID == deviceID
}

// DeviceDescriptor is what a client declares about its device, either in the
// sign-in body or in the X-Device-Info header.
type DeviceDescriptor struct {
	DeviceID string `json:"deviceId"`
	Platform string `json:"platform,omitempty"` // android or ios, optional
}
