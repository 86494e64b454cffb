package auth

import (
	"regexp"
	"strings"

	"inspection/internal/domain/entity"
	"inspection/internal/domain/service"
)

// PlatformRule maps a User-Agent predicate to a platform tag.
type PlatformRule struct {
	Name     string
	Matches  func(userAgent string) bool
	Platform entity.Platform
}

var iosUserAgentPattern = regexp.MustCompile(`(?i)iphone|ipad|ipod|\bios\b|cfnetwork|darwin`)

// DefaultPlatformRules is the ordered User-Agent rule table. The first match wins.
var DefaultPlatformRules = []PlatformRule{
	{
		Name:     "android",
		Matches:  containsAnyFold("android", "okhttp"),
		Platform: entity.PlatformAndroid,
	},
	{
		Name:     "ios",
		Matches:  iosUserAgentPattern.MatchString,
		Platform: entity.PlatformIOS,
	},
}

type platformResolver struct {
	rules    []PlatformRule
	fallback entity.Platform
}

// NewPlatformResolver returns a resolver over DefaultPlatformRules falling back to web.
func NewPlatformResolver() service.PlatformResolver {
	return NewPlatformResolverWithRules(DefaultPlatformRules, entity.PlatformWeb)
}

// NewPlatformResolverWithRules builds a resolver over a custom rule table.
func NewPlatformResolverWithRules(rules []PlatformRule, fallback entity.Platform) service.PlatformResolver {
	return &platformResolver{
		rules:    rules,
		fallback: fallback,
	}
}

// Resolve applies the hint header, then the User-Agent rules, then the fallback.
func (r *platformResolver) Resolve(evidence service.PlatformEvidence) entity.Platform {
	if platform, ok := entity.ParsePlatform(evidence.PlatformHint); ok {
		return platform
	}

	for _, rule := range r.rules {
		if rule.Matches(evidence.UserAgent) {
			return rule.Platform
		}
	}

	return r.fallback
}

func containsAnyFold(needles ...string) func(string) bool {
	return func(s string) bool {
		lower := strings.ToLower(s)
		for _, needle := range needles {
			if strings.Contains(lower, needle) {
				return true
			}
		}

		return false
	}
}
