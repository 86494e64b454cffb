package service

import "inspection/internal/domain/entity"

// PlatformEvidence is the request data the platform is derived from.
type PlatformEvidence struct {
	PlatformHint string // X-Platform header
	UserAgent    string // User-Agent header
}

// PlatformResolver classifies a request into exactly one platform tag.
// Implementations must be pure and total.
type PlatformResolver interface {
	Resolve(evidence PlatformEvidence) entity.Platform
}
