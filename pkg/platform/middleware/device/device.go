// Package device identifies the client device behind a request.
//
// Native apps send X-Client-Device-* headers. Browsers do not, so the middleware falls
// back to what the User-Agent reveals and derives a stable fingerprint from it.
package device

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"cobalt/pkg/requestcontext"
)

// Header names sent by Cobalt native clients.
const (
	HeaderFingerprint = "X-Client-Device-Fingerprint"
	HeaderTypeID      = "X-Client-Device-Type-Id"
	HeaderAppName     = "X-Client-Device-App-Name"
	HeaderAppVersion  = "X-Client-Device-App-Version"
)

// TypeID classifies the client.
type TypeID string

const (
	TypeWebBrowser TypeID = "WEB_BROWSER"
	TypeIOSApp     TypeID = "IOS_APP"
	TypeAndroidApp TypeID = "ANDROID_APP"
	TypeUnknown    TypeID = "UNKNOWN"
)

// Info describes the requesting device.
type Info struct {
	Fingerprint        string
	TypeID             TypeID
	AppName            string
	AppVersion         string
	OperatingSystem    string
	OperatingSystemVer string
	Browser            string
	Model              string
	Mobile             bool
}

type infoKey struct{}

// FromContext returns the device info set by Middleware, or a zero Info.
func FromContext(ctx context.Context) Info {
	if info, ok := ctx.Value(infoKey{}).(Info); ok {
		return info
	}
	return Info{}
}

// WithInfo stores info on ctx.
func WithInfo(ctx context.Context, info Info) context.Context {
	return context.WithValue(ctx, infoKey{}, info)
}

// Parse extracts what the User-Agent says about the device. App headers are not consulted.
func Parse(userAgent string) Info {
	if strings.TrimSpace(userAgent) == "" {
		return Info{TypeID: TypeUnknown}
	}
	ua := useragent.New(userAgent)
	browser, _ := ua.Browser()
	os := ua.OSInfo()

	info := Info{
		Fingerprint:        Fingerprint(userAgent),
		TypeID:             TypeWebBrowser,
		OperatingSystem:    os.Name,
		OperatingSystemVer: os.Version,
		Browser:            browser,
		Model:              ua.Model(),
		Mobile:             ua.Mobile(),
	}
	if ua.Bot() {
		info.TypeID = TypeUnknown
	}
	return info
}

// Fingerprint hashes the coarse browser family, major version, OS and form factor.
// Minor version bumps keep the same fingerprint.
func Fingerprint(userAgent string) string {
	if userAgent == "" {
		return ""
	}
	ua := useragent.New(userAgent)
	browser, version := ua.Browser()

	major := "unknown"
	if v, _, _ := strings.Cut(version, "."); v != "" {
		major = v
	}
	platform := "desktop"
	if ua.Mobile() {
		platform = "mobile"
	}

	data := fmt.Sprintf("%s|%s|%s|%s", normalize(browser), major, normalize(ua.OS()), platform)
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "unknown"
	}
	return s
}

// Middleware resolves device info for each request. Mount it after the metadata
// middleware, which stores the User-Agent.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		info := Parse(requestcontext.UserAgent(ctx))

		if fp := strings.TrimSpace(r.Header.Get(HeaderFingerprint)); fp != "" {
			info.Fingerprint = fp
		}
		switch TypeID(strings.ToUpper(strings.TrimSpace(r.Header.Get(HeaderTypeID)))) {
		case TypeIOSApp:
			info.TypeID = TypeIOSApp
		case TypeAndroidApp:
			info.TypeID = TypeAndroidApp
		case TypeWebBrowser:
			info.TypeID = TypeWebBrowser
		}
		info.AppName = strings.TrimSpace(r.Header.Get(HeaderAppName))
		info.AppVersion = strings.TrimSpace(r.Header.Get(HeaderAppVersion))

		ctx = WithInfo(ctx, info)
		if info.Fingerprint != "" {
			ctx = requestcontext.WithDeviceFingerprint(ctx, info.Fingerprint)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
