// MODUL: dl_cgo
// ZWECK: Laden der Shim-Bibliothek ueber dlopen/dlsym
// INPUT: Pfad zur Shared Library
// OUTPUT: shim-Implementierung mit aufgeloesten Funktionszeigern
// NEBENEFFEKTE: CGO-Aufrufe, dlopen
// ABHAENGIGKEITEN: shim/daal_shim.h, libdl
// HINWEISE: Nur mit cgo auf Unix; ohne cgo uebernimmt dl_ffi.go

//go:build cgo && (linux || darwin || freebsd)

package native

/*
#cgo CFLAGS: -I${SRCDIR}/shim
#cgo linux LDFLAGS: -ldl

#include <dlfcn.h>
#include <stdlib.h>
#include "daal_shim.h"

typedef const char *(*shim_str_fn)(void);
typedef uintptr_t (*shim_ctx_new_fn)(void);
typedef int (*shim_ctx_dispose_fn)(uintptr_t);
typedef uintptr_t (*shim_init_fn)(uintptr_t, const char *, int32_t, int32_t, const int64_t *, int32_t);
typedef uintptr_t (*shim_get_fn)(uintptr_t, const char *, int32_t, uintptr_t, int32_t, int32_t);
typedef int (*shim_set_fn)(const char *, int32_t, uintptr_t, int32_t, int32_t, uintptr_t);
typedef uintptr_t (*shim_new_result_fn)(uintptr_t, const char *);
typedef uintptr_t (*shim_get_value_fn)(const char *, uintptr_t, int32_t);
typedef int (*shim_set_value_fn)(const char *, uintptr_t, int32_t, uintptr_t);
typedef int64_t (*shim_get_scalar_fn)(const char *, uintptr_t, int32_t);
typedef int (*shim_set_scalar_fn)(const char *, uintptr_t, int32_t, int64_t);
typedef int (*shim_compute_fn)(const char *, uintptr_t, int32_t, int32_t);

static const char *call_str(void *fn) { return ((shim_str_fn)fn)(); }
static uintptr_t call_ctx_new(void *fn) { return ((shim_ctx_new_fn)fn)(); }
static int call_ctx_dispose(void *fn, uintptr_t ctx) { return ((shim_ctx_dispose_fn)fn)(ctx); }
static uintptr_t call_init(void *fn, uintptr_t ctx, const char *kind, int32_t prec, int32_t method, const int64_t *args, int32_t nargs) {
	return ((shim_init_fn)fn)(ctx, kind, prec, method, args, nargs);
}
static uintptr_t call_get(void *fn, uintptr_t ctx, const char *kind, int32_t comp, uintptr_t parent, int32_t prec, int32_t method) {
	return ((shim_get_fn)fn)(ctx, kind, comp, parent, prec, method);
}
static int call_set(void *fn, const char *kind, int32_t comp, uintptr_t parent, int32_t prec, int32_t method, uintptr_t value) {
	return ((shim_set_fn)fn)(kind, comp, parent, prec, method, value);
}
static uintptr_t call_new_result(void *fn, uintptr_t ctx, const char *kind) { return ((shim_new_result_fn)fn)(ctx, kind); }
static uintptr_t call_get_value(void *fn, const char *kind, uintptr_t obj, int32_t id) { return ((shim_get_value_fn)fn)(kind, obj, id); }
static int call_set_value(void *fn, const char *kind, uintptr_t obj, int32_t id, uintptr_t value) {
	return ((shim_set_value_fn)fn)(kind, obj, id, value);
}
static int64_t call_get_scalar(void *fn, const char *kind, uintptr_t obj, int32_t id) { return ((shim_get_scalar_fn)fn)(kind, obj, id); }
static int call_set_scalar(void *fn, const char *kind, uintptr_t obj, int32_t id, int64_t value) {
	return ((shim_set_scalar_fn)fn)(kind, obj, id, value);
}
static int call_compute(void *fn, const char *kind, uintptr_t alg, int32_t prec, int32_t method) {
	return ((shim_compute_fn)fn)(kind, alg, prec, method);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

type cgoShim struct {
	handle unsafe.Pointer
	syms   map[string]unsafe.Pointer
}

func openShim(path string) (shim, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	h := C.dlopen(cpath, C.RTLD_NOW|C.RTLD_LOCAL)
	if h == nil {
		return nil, errors.New(C.GoString(C.dlerror()))
	}

	s := &cgoShim{handle: h, syms: make(map[string]unsafe.Pointer, len(shimSymbols))}
	for _, name := range shimSymbols {
		cname := C.CString(name)
		sym := C.dlsym(h, cname)
		C.free(unsafe.Pointer(cname))
		if sym == nil {
			C.dlclose(h)
			return nil, fmt.Errorf("missing symbol %s", name)
		}
		s.syms[name] = sym
	}

	return s, nil
}

func (s *cgoShim) str(sym string) string {
	p := C.call_str(s.syms[sym])
	if p == nil {
		return ""
	}
	return C.GoString(p)
}

func (s *cgoShim) version() string {
	return s.str(symVersion)
}

func (s *cgoShim) lastError() string {
	return s.str(symLastError)
}

func (s *cgoShim) contextNew() uintptr {
	return uintptr(C.call_ctx_new(s.syms[symContextNew]))
}

func (s *cgoShim) contextDispose(ctx uintptr) int32 {
	return int32(C.call_ctx_dispose(s.syms[symContextDispose], C.uintptr_t(ctx)))
}

func (s *cgoShim) init(ctx uintptr, kind string, prec, method int32, args []int64) uintptr {
	ckind := C.CString(kind)
	defer C.free(unsafe.Pointer(ckind))

	var cargs *C.int64_t
	if len(args) > 0 {
		cargs = (*C.int64_t)(C.malloc(C.size_t(len(args)) * C.size_t(unsafe.Sizeof(C.int64_t(0)))))
		defer C.free(unsafe.Pointer(cargs))
		copy(unsafe.Slice((*int64)(unsafe.Pointer(cargs)), len(args)), args)
	}

	return uintptr(C.call_init(s.syms[symInit], C.uintptr_t(ctx), ckind, C.int32_t(prec), C.int32_t(method), cargs, C.int32_t(len(args))))
}

func (s *cgoShim) get(ctx uintptr, kind string, comp int32, parent uintptr, prec, method int32) uintptr {
	ckind := C.CString(kind)
	defer C.free(unsafe.Pointer(ckind))

	return uintptr(C.call_get(s.syms[symGet], C.uintptr_t(ctx), ckind, C.int32_t(comp), C.uintptr_t(parent), C.int32_t(prec), C.int32_t(method)))
}

func (s *cgoShim) set(kind string, comp int32, parent uintptr, prec, method int32, value uintptr) int32 {
	ckind := C.CString(kind)
	defer C.free(unsafe.Pointer(ckind))

	return int32(C.call_set(s.syms[symSet], ckind, C.int32_t(comp), C.uintptr_t(parent), C.int32_t(prec), C.int32_t(method), C.uintptr_t(value)))
}

func (s *cgoShim) newResult(ctx uintptr, kind string) uintptr {
	ckind := C.CString(kind)
	defer C.free(unsafe.Pointer(ckind))

	return uintptr(C.call_new_result(s.syms[symNewResult], C.uintptr_t(ctx), ckind))
}

func (s *cgoShim) getValue(kind string, obj uintptr, id int32) uintptr {
	ckind := C.CString(kind)
	defer C.free(unsafe.Pointer(ckind))

	return uintptr(C.call_get_value(s.syms[symGetValue], ckind, C.uintptr_t(obj), C.int32_t(id)))
}

func (s *cgoShim) setValue(kind string, obj uintptr, id int32, value uintptr) int32 {
	ckind := C.CString(kind)
	defer C.free(unsafe.Pointer(ckind))

	return int32(C.call_set_value(s.syms[symSetValue], ckind, C.uintptr_t(obj), C.int32_t(id), C.uintptr_t(value)))
}

func (s *cgoShim) getScalar(kind string, obj uintptr, id int32) int64 {
	ckind := C.CString(kind)
	defer C.free(unsafe.Pointer(ckind))

	return int64(C.call_get_scalar(s.syms[symGetScalar], ckind, C.uintptr_t(obj), C.int32_t(id)))
}

func (s *cgoShim) setScalar(kind string, obj uintptr, id int32, value int64) int32 {
	ckind := C.CString(kind)
	defer C.free(unsafe.Pointer(ckind))

	return int32(C.call_set_scalar(s.syms[symSetScalar], ckind, C.uintptr_t(obj), C.int32_t(id), C.int64_t(value)))
}

func (s *cgoShim) compute(kind string, alg uintptr, prec, method int32) int32 {
	ckind := C.CString(kind)
	defer C.free(unsafe.Pointer(ckind))

	return int32(C.call_compute(s.syms[symCompute], ckind, C.uintptr_t(alg), C.int32_t(prec), C.int32_t(method)))
}
