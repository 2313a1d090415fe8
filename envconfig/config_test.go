// config_test.go - Unit Tests fuer die Environment-Konfiguration
package envconfig

import (
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestHost(t *testing.T) {
	cases := map[string]struct {
		value  string
		expect string
	}{
		"empty":               {"", "http://127.0.0.1:8765"},
		"only address":        {"1.2.3.4", "http://1.2.3.4:8765"},
		"only port":           {":1234", "http://:1234"},
		"address and port":    {"1.2.3.4:1234", "http://1.2.3.4:1234"},
		"hostname":            {"example.com", "http://example.com:8765"},
		"hostname and port":   {"example.com:1234", "http://example.com:1234"},
		"scheme http":         {"http://example.com", "http://example.com:80"},
		"scheme https":        {"https://example.com", "https://example.com:443"},
		"ipv6 localhost":      {"[::1]", "http://[::1]:8765"},
		"ipv6 with port":      {"[::1]:1337", "http://[::1]:1337"},
		"invalid port":        {"127.0.0.1:99999", "http://127.0.0.1:8765"},
		"quoted with spaces ": {"\" 0.0.0.0:9000 \"", "http://0.0.0.0:9000"},
	}

	for name, tt := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("DAAL_HOST", tt.value)
			if host := Host(); host.String() != tt.expect {
				t.Errorf("Host(%q): erwartet %s, bekommen %s", tt.value, tt.expect, host.String())
			}
		})
	}
}

func TestBackend(t *testing.T) {
	cases := []struct {
		name, backend, library, expect string
	}{
		{"default", "", "", "table"},
		{"library implies dl", "", "/opt/daal/libdaal_shim.so", "dl"},
		{"explicit table", "table", "/opt/daal/libdaal_shim.so", "table"},
		{"case insensitive", "DL", "", "dl"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DAAL_BACKEND", tt.backend)
			t.Setenv("DAAL_LIBRARY", tt.library)
			assert.Equal(t, tt.expect, Backend())
		})
	}
}

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"false": slog.LevelInfo,
		"0":     slog.LevelInfo,
		"true":  slog.LevelDebug,
		"1":     slog.LevelDebug,
		"2":     slog.Level(-8),
	}

	for value, expect := range cases {
		t.Run(value, func(t *testing.T) {
			t.Setenv("DAAL_DEBUG", value)
			assert.Equal(t, expect, LogLevel())
		})
	}
}

func TestUint(t *testing.T) {
	t.Setenv("DAAL_MAX_HANDLES", "32")
	assert.Equal(t, uint64(32), MaxHandles())

	// Ungueltige Werte fallen auf den Default zurueck
	t.Setenv("DAAL_MAX_HANDLES", "viele")
	assert.Equal(t, uint64(0), MaxHandles())

	t.Setenv("DAAL_PROBE_PARALLEL", "3")
	assert.Equal(t, uint(3), ProbeParallel())
}

func TestBool(t *testing.T) {
	cases := map[string]bool{
		"":      false,
		"0":     false,
		"false": false,
		"1":     true,
		"true":  true,
		// Unlesbare Werte gelten als gesetzt
		"ja": true,
	}

	for value, expect := range cases {
		t.Run(value, func(t *testing.T) {
			t.Setenv("DAAL_NOVERSIONCHECK", value)
			assert.Equal(t, expect, NoVersionCheck())
		})
	}

	t.Setenv("DAAL_NOVERSIONCHECK", "")
	assert.True(t, BoolWithDefault("DAAL_NOVERSIONCHECK")(true))
}

func TestAllowedOrigins(t *testing.T) {
	t.Setenv("DAAL_ORIGINS", "http://10.0.0.1,https://tools.internal")

	origins := AllowedOrigins()
	if diff := cmp.Diff([]string{"http://10.0.0.1", "https://tools.internal"}, origins[:2]); diff != "" {
		t.Errorf("AllowedOrigins mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, origins, "http://localhost:*")
}

func TestValues(t *testing.T) {
	t.Setenv("DAAL_LIBRARY", "/opt/daal/libdaal_shim.so")

	vals := Values()
	assert.Equal(t, "/opt/daal/libdaal_shim.so", vals["DAAL_LIBRARY"])
	assert.Equal(t, "dl", vals["DAAL_BACKEND"])
	assert.Len(t, vals, len(AsMap()))
}
