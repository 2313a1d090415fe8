// registry.go - Registrierung und einmalige Initialisierung der Native-Library
// Dieses Modul waehlt die Implementierung ueber envconfig und laedt sie genau einmal.
package native

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/mod/semver"

	"github.com/7blacky7/godaal/envconfig"
)

// MinVersion ist die aelteste unterstuetzte Version der Shim-Library.
const MinVersion = "v1.0.0"

// Opener oeffnet eine Library-Implementierung; path ist optional.
type Opener func(path string) (Library, error)

var (
	openersMu sync.RWMutex
	openers   = make(map[string]Opener)
)

// RegisterLibrary registriert eine Library-Implementierung unter name.
func RegisterLibrary(name string, f Opener) {
	openersMu.Lock()
	defer openersMu.Unlock()

	if _, ok := openers[name]; ok {
		panic("native: library already registered: " + name)
	}

	openers[name] = f
}

// Libraries gibt die Namen aller registrierten Implementierungen sortiert zurueck.
func Libraries() []string {
	openersMu.RLock()
	defer openersMu.RUnlock()

	names := make([]string, 0, len(openers))
	for name := range openers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open oeffnet die Implementierung name und prueft deren Version.
func Open(name, path string) (Library, error) {
	openersMu.RLock()
	f, ok := openers[name]
	openersMu.RUnlock()
	if !ok {
		return nil, &LibraryError{Op: "open", Name: name, Err: fmt.Errorf("unsupported library, have %v", Libraries())}
	}

	lib, err := f(path)
	if err != nil {
		return nil, err
	}

	if err := checkVersion(lib.Version()); err != nil {
		if !envconfig.NoVersionCheck() {
			return nil, &LibraryError{Op: "open", Name: name, Err: err}
		}
		slog.Warn("ignoring library version", "backend", name, "error", err)
	}

	return lib, nil
}

func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid library version %q", v)
	}
	if semver.Compare(v, MinVersion) < 0 {
		return fmt.Errorf("library version %s is older than %s", v, MinVersion)
	}
	return nil
}

// ============================================================================
// Prozessweite Initialisierung
// ============================================================================

var (
	initOnce sync.Once
	initLib  Library
	initErr  error
)

// Init laedt die per DAAL_BACKEND/DAAL_LIBRARY konfigurierte Bibliothek.
// Idempotent: weitere Aufrufe liefern dieselbe Instanz bzw. denselben Fehler.
func Init() (Library, error) {
	initOnce.Do(func() {
		name, path := envconfig.Backend(), envconfig.Library()
		initLib, initErr = Open(name, path)
		if initErr != nil {
			slog.Error("native library init failed", "backend", name, "path", path, "error", initErr)
			return
		}
		slog.Debug("native library loaded", "backend", name, "path", path, "version", initLib.Version())
	})
	return initLib, initErr
}
