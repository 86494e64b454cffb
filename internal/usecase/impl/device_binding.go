package impl

import (
	"encoding/json"
	"strings"

	"inspection/internal/domain/entity"
	domainerrors "inspection/internal/domain/errors"
	"inspection/internal/usecase"
)

const maxDeviceIDLength = 255

type deviceBindingValidator struct {
	policies entity.RolePolicies
}

// NewDeviceBindingValidator is the constructor for deviceBindingValidator.
func NewDeviceBindingValidator(policies entity.RolePolicies) usecase.DeviceBindingValidator {
	return &deviceBindingValidator{policies: policies}
}

// CheckSignIn validates the sign-in descriptor in both directions: restricted
// accounts must present their bound device from its bound platform, unrestricted
// accounts must present none.
func (v *deviceBindingValidator) CheckSignIn(
	account *entity.Account,
	supplied *entity.DeviceDescriptor,
	platform entity.Platform,
) error {
	if !v.policies.RequiresDeviceBinding(account.Roles) {
		if supplied != nil {
			return domainerrors.ErrDeviceInfoNotAllowed
		}

		return checkUnbound(account)
	}

	if !account.IsDeviceBound() {
		return domainerrors.ErrDeviceNotBound
	}

	if supplied == nil || strings.TrimSpace(supplied.DeviceID) == "" {
		return domainerrors.ErrDeviceInfoRequired
	}

	descriptor := *supplied
	if err := validateDescriptor(&descriptor); err != nil {
		return err
	}

	return matchBinding(account.DeviceBinding, &descriptor, platform)
}

// CheckRequest validates the X-Device-Info header. Unrestricted accounts ignore
// the header but must still carry no binding.
func (v *deviceBindingValidator) CheckRequest(account *entity.Account, header string, platform entity.Platform) error {
	if !v.policies.RequiresDeviceBinding(account.Roles) {
		return checkUnbound(account)
	}

	if !account.IsDeviceBound() {
		return domainerrors.ErrDeviceNotBound
	}

	if strings.TrimSpace(header) == "" {
		return domainerrors.ErrDeviceInfoRequired
	}

	descriptor, err := ParseDeviceHeader(header)
	if err != nil {
		return err
	}

	return matchBinding(account.DeviceBinding, descriptor, platform)
}

// ParseDeviceHeader decodes a JSON object carrying at least a deviceId.
// Anything else is ErrDeviceInfoMalformed.
func ParseDeviceHeader(header string) (*entity.DeviceDescriptor, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(header), &raw); err != nil || raw == nil {
		return nil, domainerrors.ErrDeviceInfoMalformed
	}

	var descriptor entity.DeviceDescriptor
	if err := json.Unmarshal([]byte(header), &descriptor); err != nil {
		return nil, domainerrors.ErrDeviceInfoMalformed
	}

	if err := validateDescriptor(&descriptor); err != nil {
		return nil, err
	}

	return &descriptor, nil
}

func validateDescriptor(d *entity.DeviceDescriptor) error {
	if strings.TrimSpace(d.DeviceID) == "" || len(d.DeviceID) > maxDeviceIDLength {
		return domainerrors.ErrDeviceInfoMalformed
	}

	if d.Platform != "" {
		platform, ok := entity.ParsePlatform(d.Platform)
		if !ok || !platform.IsMobile() {
			return domainerrors.ErrDeviceInfoMalformed
		}
		d.Platform = platform.String()
	}

	return nil
}

// matchBinding compares identifiers exactly and requires the resolved platform
// to be the bound one. A declared platform that contradicts the binding is a
// mismatch too.
func matchBinding(binding *entity.DeviceBinding, supplied *entity.DeviceDescriptor, platform entity.Platform) error {
	if !binding.Matches(supplied.DeviceID) {
		return domainerrors.ErrDeviceMismatch
	}

	if platform != binding.Platform {
		return domainerrors.ErrDeviceMismatch
	}

	if supplied.Platform != "" && binding.Platform != "" &&
		!strings.EqualFold(supplied.Platform, binding.Platform.String()) {
		return domainerrors.ErrDeviceMismatch
	}

	return nil
}

func checkUnbound(account *entity.Account) error {
	if account.DeviceBinding != nil {
		return domainerrors.ErrDeviceBindingForbidden
	}

	return nil
}
