package services

import (
	"fmt"
	"strings"
)

// Callback types issued by the auth provider's email links.
var callbackTypes = map[string]bool{
	"signup":               true,
	"invite":               true,
	"recovery":             true,
	"magiclink":            true,
	"email_change_current": true,
	"email_change_new":     true,
}

type AuthService interface {
	RedirectTarget(callbackType, next string) (string, error)
}

type authService struct {
	dashboardPath string
}

func NewAuthService(dashboardPath string) AuthService {
	if dashboardPath == "" {
		dashboardPath = "/dashboard"
	}
	return &authService{dashboardPath: dashboardPath}
}

// RedirectTarget resolves where an auth callback should land. The next
// parameter is attacker-controllable, so it is honored only when it is
// a same-origin absolute path; anything else falls back to the
// dashboard.
func (s *authService) RedirectTarget(callbackType, next string) (string, error) {
	if !callbackTypes[callbackType] {
		return "", fmt.Errorf("unknown callback type %q", callbackType)
	}

	if sanitized, ok := s.sanitizeNext(next); ok {
		return sanitized, nil
	}
	return s.dashboardPath, nil
}

// sanitizeNext accepts only paths rooted at this origin: a leading
// slash, no protocol-relative "//" prefix, and no embedded scheme.
func (s *authService) sanitizeNext(next string) (string, bool) {
	if next == "" || !strings.HasPrefix(next, "/") {
		return "", false
	}
	if strings.HasPrefix(next, "//") {
		return "", false
	}
	if strings.Contains(next, "://") {
		return "", false
	}
	return next, true
}
