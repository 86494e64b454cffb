package entity

import "strings"

// Platform is the client channel type embedded in tokens and re-derived per request.
type Platform string

const (
	PlatformWeb     Platform = "web"
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

// String returns the string representation of the Platform.
func (p Platform) String() string {
	return string(p)
}

// IsValid checks if the Platform is one of the recognized tags.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformWeb, PlatformAndroid, PlatformIOS:
		return true
	default:
		return false
	}
}

// IsMobile reports whether the platform uses the bearer-header channel.
func (p Platform) IsMobile() bool {
	return p == PlatformAndroid || p == PlatformIOS
}

// ParsePlatform matches a tag case-insensitively. The second result is false for unknown tags.
func ParsePlatform(s string) (Platform, bool) {
	platform := Platform(strings.ToLower(strings.TrimSpace(s)))
	if !platform.IsValid() {
		return "", false
	}

	return platform, true
}
