package metadata

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobalt/pkg/requestcontext"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		trusted    []string
		remoteAddr string
		headers    map[string]string
		wantIP     string
	}{
		{
			name:       "ignores forwarding headers from untrusted peers",
			remoteAddr: "192.168.1.1:12345",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.1"},
			wantIP:     "192.168.1.1",
		},
		{
			name:       "uses first forwarded address from trusted proxy",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "10.0.0.1:12345",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.1, 10.0.0.2"},
			wantIP:     "203.0.113.1",
		},
		{
			name:       "bare trusted address",
			trusted:    []string{"10.0.0.1"},
			remoteAddr: "10.0.0.1:443",
			headers:    map[string]string{"X-Real-IP": "198.51.100.7"},
			wantIP:     "198.51.100.7",
		},
		{
			name:       "malformed forwarded address falls back to peer",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "10.0.0.1:12345",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip"},
			wantIP:     "10.0.0.1",
		},
		{
			name:       "ipv6 peer",
			remoteAddr: "[2001:db8::1]:8080",
			wantIP:     "2001:db8::1",
		},
		{
			name:       "unparseable peer",
			remoteAddr: "garbage",
			wantIP:     "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.trusted)
			require.NoError(t, err)

			var ip, ua string
			h := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ip = requestcontext.ClientIP(r.Context())
				ua = requestcontext.UserAgent(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			req.Header.Set("User-Agent", "curl/8.4.0")
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.wantIP, ip)
			assert.Equal(t, "curl/8.4.0", ua)
		})
	}
}

func TestNewRejectsInvalidProxies(t *testing.T) {
	_, err := New([]string{"10.0.0.0/99"})
	assert.Error(t, err)

	_, err = New([]string{"proxy.internal"})
	assert.Error(t, err)
}
