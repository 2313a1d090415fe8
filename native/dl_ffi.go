// MODUL: dl_ffi
// ZWECK: Laden der Shim-Bibliothek ohne cgo ueber goffi
// INPUT: Pfad zur Shared Library
// OUTPUT: shim-Implementierung mit vorbereiteten Call-Interfaces
// NEBENEFFEKTE: Laedt eine Shared Library in den Prozess
// ABHAENGIGKEITEN: github.com/go-webgpu/goffi
// HINWEISE: goffi laesst sich auf Unix nicht mit cgo bauen, daher !cgo

//go:build !cgo && (amd64 || arm64)

package native

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

type ffiFunc struct {
	cif types.CallInterface
	fn  unsafe.Pointer
}

type ffiShim struct {
	handle unsafe.Pointer
	funcs  map[string]*ffiFunc
}

var (
	ptrT   = types.PointerTypeDescriptor
	i32T   = types.SInt32TypeDescriptor
	i64T   = types.SInt64TypeDescriptor
	strFnT = []*types.TypeDescriptor{}
)

// Signaturen in ABI-Reihenfolge, siehe shim/daal_shim.h
var shimSignatures = map[string]struct {
	ret  *types.TypeDescriptor
	args []*types.TypeDescriptor
}{
	symVersion:        {ptrT, strFnT},
	symLastError:      {ptrT, strFnT},
	symContextNew:     {ptrT, nil},
	symContextDispose: {i32T, []*types.TypeDescriptor{ptrT}},
	symInit:           {ptrT, []*types.TypeDescriptor{ptrT, ptrT, i32T, i32T, ptrT, i32T}},
	symGet:            {ptrT, []*types.TypeDescriptor{ptrT, ptrT, i32T, ptrT, i32T, i32T}},
	symSet:            {i32T, []*types.TypeDescriptor{ptrT, i32T, ptrT, i32T, i32T, ptrT}},
	symNewResult:      {ptrT, []*types.TypeDescriptor{ptrT, ptrT}},
	symGetValue:       {ptrT, []*types.TypeDescriptor{ptrT, ptrT, i32T}},
	symSetValue:       {i32T, []*types.TypeDescriptor{ptrT, ptrT, i32T, ptrT}},
	symGetScalar:      {i64T, []*types.TypeDescriptor{ptrT, ptrT, i32T}},
	symSetScalar:      {i32T, []*types.TypeDescriptor{ptrT, ptrT, i32T, i64T}},
	symCompute:        {i32T, []*types.TypeDescriptor{ptrT, ptrT, i32T, i32T}},
}

func openShim(path string) (shim, error) {
	h, err := ffi.LoadLibrary(path)
	if err != nil {
		return nil, err
	}

	s := &ffiShim{handle: h, funcs: make(map[string]*ffiFunc, len(shimSymbols))}
	for _, name := range shimSymbols {
		sym, err := ffi.GetSymbol(h, name)
		if err != nil {
			_ = ffi.FreeLibrary(h)
			return nil, fmt.Errorf("missing symbol %s: %w", name, err)
		}

		sig := shimSignatures[name]
		f := &ffiFunc{fn: sym}
		if err := ffi.PrepareCallInterface(&f.cif, types.DefaultCall, sig.ret, sig.args); err != nil {
			_ = ffi.FreeLibrary(h)
			return nil, fmt.Errorf("prepare %s: %w", name, err)
		}
		s.funcs[name] = f
	}

	return s, nil
}

// callPtr ruft eine Funktion mit Pointer-Rueckgabe auf.
func (s *ffiShim) callPtr(sym string, args ...unsafe.Pointer) uintptr {
	var ret uintptr
	f := s.funcs[sym]
	if err := ffi.CallFunction(&f.cif, f.fn, unsafe.Pointer(&ret), args); err != nil {
		return 0
	}
	return ret
}

// callInt ruft eine Funktion mit int-Rueckgabe auf; Aufruffehler ergeben -1.
func (s *ffiShim) callInt(sym string, args ...unsafe.Pointer) int32 {
	var ret uint64
	f := s.funcs[sym]
	if err := ffi.CallFunction(&f.cif, f.fn, unsafe.Pointer(&ret), args); err != nil {
		return -1
	}
	return int32(ret)
}

func (s *ffiShim) str(sym string) string {
	var p unsafe.Pointer
	f := s.funcs[sym]
	if err := ffi.CallFunction(&f.cif, f.fn, unsafe.Pointer(&p), nil); err != nil || p == nil {
		return ""
	}
	return goString(p)
}

// goString kopiert einen NUL-terminierten C-String.
func goString(p unsafe.Pointer) string {
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// cString liefert einen NUL-terminierten Puffer; der Aufrufer haelt ihn bis nach dem Aufruf am Leben.
func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

func (s *ffiShim) version() string {
	return s.str(symVersion)
}

func (s *ffiShim) lastError() string {
	return s.str(symLastError)
}

func (s *ffiShim) contextNew() uintptr {
	return s.callPtr(symContextNew)
}

func (s *ffiShim) contextDispose(ctx uintptr) int32 {
	return s.callInt(symContextDispose, unsafe.Pointer(&ctx))
}

func (s *ffiShim) init(ctx uintptr, kind string, prec, method int32, args []int64) uintptr {
	k := cString(kind)
	kp := unsafe.Pointer(&k[0])

	var ap unsafe.Pointer
	if len(args) > 0 {
		ap = unsafe.Pointer(&args[0])
	}
	n := int32(len(args))

	ret := s.callPtr(symInit,
		unsafe.Pointer(&ctx), unsafe.Pointer(&kp),
		unsafe.Pointer(&prec), unsafe.Pointer(&method),
		unsafe.Pointer(&ap), unsafe.Pointer(&n))
	runtime.KeepAlive(k)
	runtime.KeepAlive(args)
	return ret
}

func (s *ffiShim) get(ctx uintptr, kind string, comp int32, parent uintptr, prec, method int32) uintptr {
	k := cString(kind)
	kp := unsafe.Pointer(&k[0])

	ret := s.callPtr(symGet,
		unsafe.Pointer(&ctx), unsafe.Pointer(&kp), unsafe.Pointer(&comp),
		unsafe.Pointer(&parent), unsafe.Pointer(&prec), unsafe.Pointer(&method))
	runtime.KeepAlive(k)
	return ret
}

func (s *ffiShim) set(kind string, comp int32, parent uintptr, prec, method int32, value uintptr) int32 {
	k := cString(kind)
	kp := unsafe.Pointer(&k[0])

	ret := s.callInt(symSet,
		unsafe.Pointer(&kp), unsafe.Pointer(&comp), unsafe.Pointer(&parent),
		unsafe.Pointer(&prec), unsafe.Pointer(&method), unsafe.Pointer(&value))
	runtime.KeepAlive(k)
	return ret
}

func (s *ffiShim) newResult(ctx uintptr, kind string) uintptr {
	k := cString(kind)
	kp := unsafe.Pointer(&k[0])

	ret := s.callPtr(symNewResult, unsafe.Pointer(&ctx), unsafe.Pointer(&kp))
	runtime.KeepAlive(k)
	return ret
}

func (s *ffiShim) getValue(kind string, obj uintptr, id int32) uintptr {
	k := cString(kind)
	kp := unsafe.Pointer(&k[0])

	ret := s.callPtr(symGetValue, unsafe.Pointer(&kp), unsafe.Pointer(&obj), unsafe.Pointer(&id))
	runtime.KeepAlive(k)
	return ret
}

func (s *ffiShim) setValue(kind string, obj uintptr, id int32, value uintptr) int32 {
	k := cString(kind)
	kp := unsafe.Pointer(&k[0])

	ret := s.callInt(symSetValue, unsafe.Pointer(&kp), unsafe.Pointer(&obj), unsafe.Pointer(&id), unsafe.Pointer(&value))
	runtime.KeepAlive(k)
	return ret
}

func (s *ffiShim) getScalar(kind string, obj uintptr, id int32) int64 {
	k := cString(kind)
	kp := unsafe.Pointer(&k[0])

	var ret int64
	f := s.funcs[symGetScalar]
	err := ffi.CallFunction(&f.cif, f.fn, unsafe.Pointer(&ret),
		[]unsafe.Pointer{unsafe.Pointer(&kp), unsafe.Pointer(&obj), unsafe.Pointer(&id)})
	runtime.KeepAlive(k)
	if err != nil {
		return 0
	}
	return ret
}

func (s *ffiShim) setScalar(kind string, obj uintptr, id int32, value int64) int32 {
	k := cString(kind)
	kp := unsafe.Pointer(&k[0])

	ret := s.callInt(symSetScalar, unsafe.Pointer(&kp), unsafe.Pointer(&obj), unsafe.Pointer(&id), unsafe.Pointer(&value))
	runtime.KeepAlive(k)
	return ret
}

func (s *ffiShim) compute(kind string, alg uintptr, prec, method int32) int32 {
	k := cString(kind)
	kp := unsafe.Pointer(&k[0])

	ret := s.callInt(symCompute, unsafe.Pointer(&kp), unsafe.Pointer(&alg), unsafe.Pointer(&prec), unsafe.Pointer(&method))
	runtime.KeepAlive(k)
	return ret
}
