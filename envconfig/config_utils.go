// config_utils.go - Utility-Funktionen und Export fuer Konfiguration
//
// Dieses Modul enthaelt:
// - BoolWithDefault/Bool: Boolean-Getter mit Default-Wert
// - String: String-Getter
// - Uint/Uint64: Integer-Getter mit Default-Wert
// - EnvVar: Struktur fuer Environment-Variablen-Info
// - AsMap: Gibt alle Konfigurationen als Map zurueck
// - Values: Gibt alle Konfigurationswerte als String-Map zurueck
package envconfig

import (
	"fmt"
	"log/slog"
	"strconv"
)

// =============================================================================
// Boolean-Getter
// =============================================================================

// BoolWithDefault gibt eine Funktion zurueck, die einen Bool mit Default-Wert liest
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool gibt eine Funktion zurueck, die einen Bool liest (Default: false)
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// =============================================================================
// String-Getter
// =============================================================================

// String gibt eine Funktion zurueck, die einen String liest
func String(s string) func() string {
	return func() string {
		return Var(s)
	}
}

// =============================================================================
// Integer-Getter
// =============================================================================

// Uint gibt eine Funktion zurueck, die einen uint mit Default-Wert liest
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// Uint64 gibt eine Funktion zurueck, die einen uint64 mit Default-Wert liest
func Uint64(key string, defaultValue uint64) func() uint64 {
	return func() uint64 {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return n
			}
		}
		return defaultValue
	}
}

// =============================================================================
// Export-Strukturen und -Funktionen
// =============================================================================

// EnvVar repraesentiert eine Environment-Variable mit Metadaten
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap gibt alle Konfigurationen als Map zurueck
// Enthaelt Namen, aktuelle Werte und Beschreibungen
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"DAAL_DEBUG":          {"DAAL_DEBUG", LogLevel(), "Show additional debug information (e.g. DAAL_DEBUG=1, DAAL_DEBUG=2 for trace)"},
		"DAAL_HOST":           {"DAAL_HOST", Host(), "IP Address for the introspection server (default 127.0.0.1:8765)"},
		"DAAL_ORIGINS":        {"DAAL_ORIGINS", AllowedOrigins(), "A comma separated list of allowed origins"},
		"DAAL_BACKEND":        {"DAAL_BACKEND", Backend(), "Native library implementation: table or dl"},
		"DAAL_LIBRARY":        {"DAAL_LIBRARY", Library(), "Path to the native shim library"},
		"DAAL_NOVERSIONCHECK": {"DAAL_NOVERSIONCHECK", NoVersionCheck(), "Load shim libraries older than the minimum supported version"},
		"DAAL_MAX_HANDLES":    {"DAAL_MAX_HANDLES", MaxHandles(), "Maximum number of handles per context in the table backend (0 = unlimited)"},
		"DAAL_PROBE_PARALLEL": {"DAAL_PROBE_PARALLEL", ProbeParallel(), "Maximum number of concurrent probe constructions"},
	}
}

// Values gibt alle Konfigurationswerte als String-Map zurueck
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
