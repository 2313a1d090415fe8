// config_features.go - Native-Library und Limits
//
// Dieses Modul enthaelt:
// - Pfad der nativen Shim-Library
// - Handle-Limits der In-Process-Tabelle
// - Parallelitaets-Einstellungen fuer Probe-Laeufe
package envconfig

import "runtime"

// =============================================================================
// Native-Library
// =============================================================================

var (
	// Library ist der Pfad zur nativen Shim-Library (libdaal_shim.so)
	Library = String("DAAL_LIBRARY")

	// NoVersionCheck laedt auch Shim-Libraries unterhalb von MinVersion
	// Konfigurierbar via DAAL_NOVERSIONCHECK
	NoVersionCheck = Bool("DAAL_NOVERSIONCHECK")
)

// =============================================================================
// Limits
// =============================================================================

var (
	// MaxHandles begrenzt die Handles pro Context im Table-Backend
	// Konfigurierbar via DAAL_MAX_HANDLES, 0 = unbegrenzt
	MaxHandles = Uint64("DAAL_MAX_HANDLES", 0)

	// ProbeParallel setzt die Anzahl paralleler Probe-Konstruktionen
	// Konfigurierbar via DAAL_PROBE_PARALLEL
	ProbeParallel = Uint("DAAL_PROBE_PARALLEL", uint(runtime.NumCPU()))
)
