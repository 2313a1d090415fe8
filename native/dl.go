// MODUL: dl
// ZWECK: Library-Implementierung ueber die dynamisch geladene Shim-Bibliothek
// INPUT: Pfad zur Shim-Bibliothek (DAAL_LIBRARY)
// OUTPUT: Library, deren Aufrufe an daal_shim_* weitergereicht werden
// NEBENEFFEKTE: Laedt eine Shared Library in den Prozess
// ABHAENGIGKEITEN: dl_cgo.go (cgo), dl_ffi.go (goffi, ohne cgo), dl_stub.go
// HINWEISE: Die Aufrufmechanik haengt vom Build ab; Fehlerbehandlung ist gemeinsam

package native

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strconv"
	"sync"
)

// Symbolnamen der Shim-ABI (siehe shim/daal_shim.h)
const (
	symVersion        = "daal_shim_version"
	symLastError      = "daal_shim_last_error"
	symContextNew     = "daal_shim_context_new"
	symContextDispose = "daal_shim_context_dispose"
	symInit           = "daal_shim_init"
	symGet            = "daal_shim_get"
	symSet            = "daal_shim_set"
	symNewResult      = "daal_shim_new_result"
	symGetValue       = "daal_shim_get_value"
	symSetValue       = "daal_shim_set_value"
	symGetScalar      = "daal_shim_get_scalar"
	symSetScalar      = "daal_shim_set_scalar"
	symCompute        = "daal_shim_compute"
)

var shimSymbols = []string{
	symVersion, symLastError,
	symContextNew, symContextDispose,
	symInit, symGet, symSet,
	symNewResult, symGetValue, symSetValue,
	symGetScalar, symSetScalar, symCompute,
}

// ErrShimUnavailable wird zurueckgegeben wenn dieser Build keine Shared Libraries laden kann.
var ErrShimUnavailable = errors.New("native: dynamic loading not supported in this build")

// shim ist die rohe Aufrufschicht; eine Implementierung pro Build-Variante.
type shim interface {
	version() string
	lastError() string
	contextNew() uintptr
	contextDispose(ctx uintptr) int32
	init(ctx uintptr, kind string, prec, method int32, args []int64) uintptr
	get(ctx uintptr, kind string, comp int32, parent uintptr, prec, method int32) uintptr
	set(kind string, comp int32, parent uintptr, prec, method int32, value uintptr) int32
	newResult(ctx uintptr, kind string) uintptr
	getValue(kind string, obj uintptr, id int32) uintptr
	setValue(kind string, obj uintptr, id int32, value uintptr) int32
	getScalar(kind string, obj uintptr, id int32) int64
	setScalar(kind string, obj uintptr, id int32, value int64) int32
	compute(kind string, alg uintptr, prec, method int32) int32
}

func init() {
	RegisterLibrary("dl", OpenDL)
}

// DefaultShimName ist der Dateiname, der ohne DAAL_LIBRARY gesucht wird.
func DefaultShimName() string {
	switch runtime.GOOS {
	case "darwin":
		return "libdaal_shim.dylib"
	case "windows":
		return "daal_shim.dll"
	default:
		return "libdaal_shim.so"
	}
}

// OpenDL laedt die Shim-Bibliothek von path.
func OpenDL(path string) (Library, error) {
	if path == "" {
		path = DefaultShimName()
	}

	s, err := openShim(path)
	if err != nil {
		return nil, &LibraryError{Op: "load", Name: path, Err: err}
	}

	return &dlLibrary{path: path, shim: s}, nil
}

// ============================================================================
// dlLibrary
// ============================================================================

// dlLibrary serialisiert Aufrufe, damit daal_shim_last_error zum
// vorherigen Aufruf auf demselben OS-Thread gehoert.
type dlLibrary struct {
	mu   sync.Mutex
	path string
	shim shim
}

func (l *dlLibrary) call(op, name string, fn func() uintptr) (Handle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	h := fn()
	if h == 0 {
		return 0, l.failure(op, name, ErrNullHandle)
	}
	return Handle(h), nil
}

func (l *dlLibrary) status(op, name string, fn func() int32) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if rc := fn(); rc != 0 {
		return l.failure(op, name, errors.New("status "+strconv.Itoa(int(rc))))
	}
	return nil
}

// failure liest die native Fehlermeldung; l.mu muss gehalten werden.
func (l *dlLibrary) failure(op, name string, fallback error) error {
	if msg := l.shim.lastError(); msg != "" {
		return &LibraryError{Op: op, Name: name, Err: errors.New(msg)}
	}
	return &LibraryError{Op: op, Name: name, Err: fallback}
}

// checkCodes prueft Precision-, Methoden- und Identifier-Codes vor der
// Verengung auf int32; ein abgeschnittener Code wuerde ein anderes Objekt adressieren.
func checkCodes(op, name string, codes ...int) error {
	for _, c := range codes {
		if c < math.MinInt32 || c > math.MaxInt32 {
			return &LibraryError{Op: op, Name: name, Err: fmt.Errorf("%w: %d", ErrCodeRange, c)}
		}
	}
	return nil
}

func (l *dlLibrary) NewContext() (Handle, error) {
	return l.call(OpNewContext, l.path, l.shim.contextNew)
}

func (l *dlLibrary) DisposeContext(ctx Handle) error {
	return l.status(OpDisposeContext, ctx.String(), func() int32 {
		return l.shim.contextDispose(uintptr(ctx))
	})
}

func (l *dlLibrary) Init(ctx Handle, kind Kind, prec, method int, args ...int64) (Handle, error) {
	if err := checkCodes(OpInit, string(kind), prec, method); err != nil {
		return 0, err
	}
	return l.call(OpInit, string(kind), func() uintptr {
		return l.shim.init(uintptr(ctx), string(kind), int32(prec), int32(method), args)
	})
}

func (l *dlLibrary) Get(ctx Handle, kind Kind, comp Component, parent Handle, prec, method int) (Handle, error) {
	if err := checkCodes(OpGet, string(kind), int(comp), prec, method); err != nil {
		return 0, err
	}
	return l.call(OpGet, string(kind), func() uintptr {
		return l.shim.get(uintptr(ctx), string(kind), int32(comp), uintptr(parent), int32(prec), int32(method))
	})
}

func (l *dlLibrary) Set(kind Kind, comp Component, parent Handle, prec, method int, value Handle) error {
	if err := checkCodes(OpSet, string(kind), int(comp), prec, method); err != nil {
		return err
	}
	return l.status(OpSet, string(kind), func() int32 {
		return l.shim.set(string(kind), int32(comp), uintptr(parent), int32(prec), int32(method), uintptr(value))
	})
}

func (l *dlLibrary) NewResult(ctx Handle, kind Kind) (Handle, error) {
	return l.call(OpNewResult, string(kind), func() uintptr {
		return l.shim.newResult(uintptr(ctx), string(kind))
	})
}

func (l *dlLibrary) GetValue(kind Kind, obj Handle, id int) (Handle, error) {
	if err := checkCodes(OpGetValue, string(kind), id); err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// 0 ist hier "nicht gesetzt", nur eine Fehlermeldung zaehlt als Fehler
	h := l.shim.getValue(string(kind), uintptr(obj), int32(id))
	if h == 0 {
		if msg := l.shim.lastError(); msg != "" {
			return 0, &LibraryError{Op: OpGetValue, Name: string(kind), Err: errors.New(msg)}
		}
	}
	return Handle(h), nil
}

func (l *dlLibrary) SetValue(kind Kind, obj Handle, id int, value Handle) error {
	if err := checkCodes(OpSetValue, string(kind), id); err != nil {
		return err
	}
	return l.status(OpSetValue, string(kind), func() int32 {
		return l.shim.setValue(string(kind), uintptr(obj), int32(id), uintptr(value))
	})
}

func (l *dlLibrary) GetScalar(kind Kind, obj Handle, id int) (int64, error) {
	if err := checkCodes(OpGetScalar, string(kind), id); err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// jeder Wert ist gueltig, daher entscheidet allein die Fehlermeldung
	v := l.shim.getScalar(string(kind), uintptr(obj), int32(id))
	if msg := l.shim.lastError(); msg != "" {
		return 0, &LibraryError{Op: OpGetScalar, Name: string(kind), Err: errors.New(msg)}
	}
	return v, nil
}

func (l *dlLibrary) SetScalar(kind Kind, obj Handle, id int, value int64) error {
	if err := checkCodes(OpSetScalar, string(kind), id); err != nil {
		return err
	}
	return l.status(OpSetScalar, string(kind), func() int32 {
		return l.shim.setScalar(string(kind), uintptr(obj), int32(id), value)
	})
}

func (l *dlLibrary) Compute(kind Kind, alg Handle, prec, method int) error {
	if err := checkCodes(OpCompute, string(kind), prec, method); err != nil {
		return err
	}
	return l.status(OpCompute, string(kind), func() int32 {
		return l.shim.compute(string(kind), uintptr(alg), int32(prec), int32(method))
	})
}

func (l *dlLibrary) Version() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.shim.version()
}
