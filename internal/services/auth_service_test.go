package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirectTarget_HonorsSameOriginNext(t *testing.T) {
	svc := NewAuthService("/dashboard")

	target, err := svc.RedirectTarget("signup", "/settings/billing")

	require.NoError(t, err)
	assert.Equal(t, "/settings/billing", target)
}

func TestRedirectTarget_DefaultsToDashboard(t *testing.T) {
	svc := NewAuthService("/dashboard")

	target, err := svc.RedirectTarget("recovery", "")

	require.NoError(t, err)
	assert.Equal(t, "/dashboard", target)
}

func TestRedirectTarget_RejectsOpenRedirects(t *testing.T) {
	svc := NewAuthService("/dashboard")

	attacks := []string{
		"https://evil.example.com/phish",
		"//evil.example.com",
		"/path/with://scheme",
		"javascript:alert(1)",
		"relative/path",
	}

	for _, next := range attacks {
		target, err := svc.RedirectTarget("magiclink", next)
		require.NoError(t, err)
		assert.Equalf(t, "/dashboard", target, "next=%q must fall back to dashboard", next)
	}
}

func TestRedirectTarget_UnknownTypeFails(t *testing.T) {
	svc := NewAuthService("/dashboard")

	_, err := svc.RedirectTarget("password_reset", "/anywhere")

	assert.Error(t, err)
}

func TestRedirectTarget_AcceptsEveryCallbackType(t *testing.T) {
	svc := NewAuthService("/dashboard")

	for _, callbackType := range []string{"signup", "invite", "recovery", "magiclink", "email_change_current", "email_change_new"} {
		_, err := svc.RedirectTarget(callbackType, "")
		assert.NoErrorf(t, err, "type %q should be accepted", callbackType)
	}
}
