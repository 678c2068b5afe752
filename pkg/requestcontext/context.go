// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// Middleware sets these values; services and response builders read them without
// importing net/http.
//
//	viewer := requestcontext.AccountID(ctx)
//	loc := requestcontext.Location(ctx)
//	now := requestcontext.Now(ctx)
//
// Tests inject values directly:
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
//	ctx = requestcontext.WithLocale(ctx, language.Spanish)
package requestcontext

import (
	"context"
	"time"

	"golang.org/x/text/language"

	id "cobalt/pkg/domain"
)

type (
	accountIDKey         struct{}
	roleIDKey            struct{}
	institutionIDKey     struct{}
	deviceFingerprintKey struct{}
	clientIPKey          struct{}
	userAgentKey         struct{}
	requestIDKey         struct{}
	requestTimeKey       struct{}
	localeKey            struct{}
	locationKey          struct{}
)

// Exported context keys for direct use in tests that need context.WithValue.
var (
	ContextKeyAccountID         = accountIDKey{}
	ContextKeyRoleID            = roleIDKey{}
	ContextKeyInstitutionID     = institutionIDKey{}
	ContextKeyDeviceFingerprint = deviceFingerprintKey{}
	ContextKeyClientIP          = clientIPKey{}
	ContextKeyUserAgent         = userAgentKey{}
	ContextKeyRequestID         = requestIDKey{}
	ContextKeyRequestTime       = requestTimeKey{}
	ContextKeyLocale            = localeKey{}
	ContextKeyLocation          = locationKey{}
)

// -----------------------------------------------------------------------------
// Viewer (the authenticated account)
// -----------------------------------------------------------------------------

// AccountID retrieves the viewer's account ID. Returns the zero value if anonymous.
func AccountID(ctx context.Context) id.AccountID {
	if accountID, ok := ctx.Value(ContextKeyAccountID).(id.AccountID); ok {
		return accountID
	}
	return id.AccountID{}
}

// WithAccountID injects the viewer's account ID into the context.
func WithAccountID(ctx context.Context, accountID id.AccountID) context.Context {
	return context.WithValue(ctx, ContextKeyAccountID, accountID)
}

// RoleID retrieves the viewer's role. Anonymous viewers are treated as patients.
func RoleID(ctx context.Context) id.RoleID {
	if roleID, ok := ctx.Value(ContextKeyRoleID).(id.RoleID); ok {
		return roleID
	}
	return id.RoleIDPatient
}

// WithRoleID injects the viewer's role into the context.
func WithRoleID(ctx context.Context, roleID id.RoleID) context.Context {
	return context.WithValue(ctx, ContextKeyRoleID, roleID)
}

// InstitutionID retrieves the institution the request is served for.
func InstitutionID(ctx context.Context) id.InstitutionID {
	if institutionID, ok := ctx.Value(ContextKeyInstitutionID).(id.InstitutionID); ok {
		return institutionID
	}
	return ""
}

// WithInstitutionID injects the institution into the context.
func WithInstitutionID(ctx context.Context, institutionID id.InstitutionID) context.Context {
	return context.WithValue(ctx, ContextKeyInstitutionID, institutionID)
}

// -----------------------------------------------------------------------------
// Client metadata (IP, User-Agent, device)
// -----------------------------------------------------------------------------

// DeviceFingerprint retrieves the pre-computed device fingerprint from the context.
func DeviceFingerprint(ctx context.Context) string {
	if fp, ok := ctx.Value(ContextKeyDeviceFingerprint).(string); ok {
		return fp
	}
	return ""
}

// WithDeviceFingerprint injects a device fingerprint into a context.
func WithDeviceFingerprint(ctx context.Context, fingerprint string) context.Context {
	return context.WithValue(ctx, ContextKeyDeviceFingerprint, fingerprint)
}

// ClientIP retrieves the client IP address from the context.
func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(ContextKeyClientIP).(string); ok {
		return ip
	}
	return ""
}

// WithClientIP injects the client IP address into the context.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ContextKeyClientIP, ip)
}

// UserAgent retrieves the User-Agent from the context.
func UserAgent(ctx context.Context) string {
	if ua, ok := ctx.Value(ContextKeyUserAgent).(string); ok {
		return ua
	}
	return ""
}

// WithUserAgent injects the User-Agent into the context.
func WithUserAgent(ctx context.Context, ua string) context.Context {
	return context.WithValue(ctx, ContextKeyUserAgent, ua)
}

// -----------------------------------------------------------------------------
// Request metadata
// -----------------------------------------------------------------------------

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Now returns the request-scoped time, or time.Now() if not set.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a fixed request time into the context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}

// -----------------------------------------------------------------------------
// Localization
// -----------------------------------------------------------------------------

// Locale returns the negotiated locale, defaulting to en-US.
func Locale(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(ContextKeyLocale).(language.Tag); ok {
		return tag
	}
	return language.AmericanEnglish
}

// WithLocale injects the negotiated locale into the context.
func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, ContextKeyLocale, tag)
}

// Location returns the viewer's time zone, defaulting to UTC.
func Location(ctx context.Context) *time.Location {
	if loc, ok := ctx.Value(ContextKeyLocation).(*time.Location); ok && loc != nil {
		return loc
	}
	return time.UTC
}

// WithLocation injects the viewer's time zone into the context.
func WithLocation(ctx context.Context, loc *time.Location) context.Context {
	return context.WithValue(ctx, ContextKeyLocation, loc)
}
