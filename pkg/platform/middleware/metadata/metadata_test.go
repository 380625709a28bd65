package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIPFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "first forwarded hop", headers: map[string]string{"X-Forwarded-For": " 10.0.0.1 , 10.0.0.2"}, remote: "192.0.2.1:4000", want: "10.0.0.1"},
		{name: "real ip header", headers: map[string]string{"X-Real-IP": "10.0.0.9"}, remote: "192.0.2.1:4000", want: "10.0.0.9"},
		{name: "remote address", remote: "192.0.2.1:4000", want: "192.0.2.1"},
		{name: "remote without port", remote: "192.0.2.7", want: "192.0.2.7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIPFromRequest(req))
		})
	}
}

func TestClientMetadata(t *testing.T) {
	var seen string
	h := ClientMetadata(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetClientIP(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.4:1234"
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "198.51.100.4", seen)
	assert.Empty(t, GetClientIP(context.Background()))
}
