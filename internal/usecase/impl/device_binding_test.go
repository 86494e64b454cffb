package impl

import (
	"strings"
	"testing"

	"inspection/internal/domain/entity"
	domainerrors "inspection/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceBinding_CheckSignIn(t *testing.T) {
	validator := NewDeviceBindingValidator(testPolicies())

	unbound := inspectorAccount()
	unbound.DeviceBinding = nil

	boundAdmin := adminAccount()
	boundAdmin.DeviceBinding = &entity.DeviceBinding{DeviceID: "DEV-1", Platform: entity.PlatformAndroid}

	tests := []struct {
		name     string
		account  *entity.Account
		supplied *entity.DeviceDescriptor
		platform entity.Platform // android when empty
		wantErr  error
	}{
		{
			name:     "inspector with matching device",
			account:  inspectorAccount(),
			supplied: &entity.DeviceDescriptor{DeviceID: "DEV-123", Platform: "android"},
		},
		{
			name:     "inspector with matching device and no platform",
			account:  inspectorAccount(),
			supplied: &entity.DeviceDescriptor{DeviceID: "DEV-123"},
		},
		{
			name:    "inspector without descriptor",
			account: inspectorAccount(),
			wantErr: domainerrors.ErrDeviceInfoRequired,
		},
		{
			name:     "inspector with blank device id",
			account:  inspectorAccount(),
			supplied: &entity.DeviceDescriptor{DeviceID: "  "},
			wantErr:  domainerrors.ErrDeviceInfoRequired,
		},
		{
			name:     "inspector with other device",
			account:  inspectorAccount(),
			supplied: &entity.DeviceDescriptor{DeviceID: "DEV-999", Platform: "android"},
			wantErr:  domainerrors.ErrDeviceMismatch,
		},
		{
			name:     "inspector with device id differing in case",
			account:  inspectorAccount(),
			supplied: &entity.DeviceDescriptor{DeviceID: "dev-123"},
			wantErr:  domainerrors.ErrDeviceMismatch,
		},
		{
			name:     "inspector with conflicting platform",
			account:  inspectorAccount(),
			supplied: &entity.DeviceDescriptor{DeviceID: "DEV-123", Platform: "ios"},
			wantErr:  domainerrors.ErrDeviceMismatch,
		},
		{
			name:     "inspector on the bound device from an iphone",
			account:  inspectorAccount(),
			supplied: &entity.DeviceDescriptor{DeviceID: "DEV-123"},
			platform: entity.PlatformIOS,
			wantErr:  domainerrors.ErrDeviceMismatch,
		},
		{
			name:     "inspector on the bound device from a browser",
			account:  inspectorAccount(),
			supplied: &entity.DeviceDescriptor{DeviceID: "DEV-123", Platform: "android"},
			platform: entity.PlatformWeb,
			wantErr:  domainerrors.ErrDeviceMismatch,
		},
		{
			name:     "inspector with unknown platform",
			account:  inspectorAccount(),
			supplied: &entity.DeviceDescriptor{DeviceID: "DEV-123", Platform: "web"},
			wantErr:  domainerrors.ErrDeviceInfoMalformed,
		},
		{
			name:     "inspector without binding on record",
			account:  unbound,
			supplied: &entity.DeviceDescriptor{DeviceID: "DEV-123"},
			wantErr:  domainerrors.ErrDeviceNotBound,
		},
		{
			name:    "admin without descriptor",
			account: adminAccount(),
		},
		{
			name:     "admin with descriptor",
			account:  adminAccount(),
			supplied: &entity.DeviceDescriptor{DeviceID: "DEV-123"},
			wantErr:  domainerrors.ErrDeviceInfoNotAllowed,
		},
		{
			name:    "admin carrying a binding",
			account: boundAdmin,
			wantErr: domainerrors.ErrDeviceBindingForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform := tt.platform
			if platform == "" {
				platform = entity.PlatformAndroid
			}

			err := validator.CheckSignIn(tt.account, tt.supplied, platform)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Same(t, tt.wantErr, err)
		})
	}
}

func TestDeviceBinding_CheckRequest(t *testing.T) {
	validator := NewDeviceBindingValidator(testPolicies())

	tests := []struct {
		name    string
		account *entity.Account
		header  string
		wantErr error
	}{
		{"matching header", inspectorAccount(), `{"deviceId":"DEV-123","platform":"android"}`, nil},
		{"matching header without platform", inspectorAccount(), `{"deviceId":"DEV-123"}`, nil},
		{"extra fields ignored", inspectorAccount(), `{"deviceId":"DEV-123","model":"Pixel 8"}`, nil},
		{"missing header", inspectorAccount(), "", domainerrors.ErrDeviceInfoRequired},
		{"blank header", inspectorAccount(), "   ", domainerrors.ErrDeviceInfoRequired},
		{"other device", inspectorAccount(), `{"deviceId":"DEV-999","platform":"android"}`, domainerrors.ErrDeviceMismatch},
		{"not json", inspectorAccount(), "DEV-123", domainerrors.ErrDeviceInfoMalformed},
		{"json array", inspectorAccount(), `["DEV-123"]`, domainerrors.ErrDeviceInfoMalformed},
		{"json null", inspectorAccount(), "null", domainerrors.ErrDeviceInfoMalformed},
		{"json string", inspectorAccount(), `"DEV-123"`, domainerrors.ErrDeviceInfoMalformed},
		{"missing device id", inspectorAccount(), `{"platform":"android"}`, domainerrors.ErrDeviceInfoMalformed},
		{"numeric device id", inspectorAccount(), `{"deviceId":123}`, domainerrors.ErrDeviceInfoMalformed},
		{"overlong device id", inspectorAccount(), `{"deviceId":"` + strings.Repeat("x", 256) + `"}`, domainerrors.ErrDeviceInfoMalformed},
		{"truncated json", inspectorAccount(), `{"deviceId":"DEV-123"`, domainerrors.ErrDeviceInfoMalformed},
		{"admin ignores header", adminAccount(), "garbage", nil},
		{"admin without header", adminAccount(), "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.CheckRequest(tt.account, tt.header, entity.PlatformAndroid)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Same(t, tt.wantErr, err)
		})
	}
}

func TestDeviceBinding_CheckRequestRequiresBoundPlatform(t *testing.T) {
	validator := NewDeviceBindingValidator(testPolicies())
	header := `{"deviceId":"DEV-123"}`

	assert.NoError(t, validator.CheckRequest(inspectorAccount(), header, entity.PlatformAndroid))
	assert.Same(t, domainerrors.ErrDeviceMismatch, validator.CheckRequest(inspectorAccount(), header, entity.PlatformIOS))
	assert.Same(t, domainerrors.ErrDeviceMismatch, validator.CheckRequest(inspectorAccount(), header, entity.PlatformWeb))

	unknownPlatform := inspectorAccount()
	unknownPlatform.DeviceBinding.Platform = ""
	assert.Same(t, domainerrors.ErrDeviceMismatch, validator.CheckRequest(unknownPlatform, header, entity.PlatformAndroid))

	assert.NoError(t, validator.CheckRequest(adminAccount(), "", entity.PlatformWeb))
}

func TestDeviceBinding_CheckRequestRechecksInvariants(t *testing.T) {
	validator := NewDeviceBindingValidator(testPolicies())

	unbound := inspectorAccount()
	unbound.DeviceBinding = nil
	assert.Same(t, domainerrors.ErrDeviceNotBound, validator.CheckRequest(unbound, `{"deviceId":"DEV-123"}`, entity.PlatformAndroid))

	boundAdmin := adminAccount()
	boundAdmin.DeviceBinding = &entity.DeviceBinding{DeviceID: "DEV-1"}
	assert.Same(t, domainerrors.ErrDeviceBindingForbidden, validator.CheckRequest(boundAdmin, "", entity.PlatformWeb))
}

func TestDeviceBinding_MixedRolesFollowRestrictedPolicy(t *testing.T) {
	validator := NewDeviceBindingValidator(testPolicies())
	account := inspectorAccount()
	account.Roles = entity.Roles{entity.RoleAdmin, entity.RoleInspector}

	assert.Same(t, domainerrors.ErrDeviceInfoRequired, validator.CheckSignIn(account, nil, entity.PlatformAndroid))
	assert.NoError(t, validator.CheckSignIn(account, &entity.DeviceDescriptor{DeviceID: "DEV-123"}, entity.PlatformAndroid))
}

func TestParseDeviceHeader(t *testing.T) {
	descriptor, err := ParseDeviceHeader(`{"deviceId":"DEV-123","platform":"Android"}`)

	require.NoError(t, err)
	assert.Equal(t, "DEV-123", descriptor.DeviceID)
	assert.Equal(t, "android", descriptor.Platform)
}
