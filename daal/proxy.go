// MODUL: proxy
// ZWECK: Gemeinsame Maschinerie fuer konfigurierte Proxies (Validierung, Handle-Bindung, Companions)
// INPUT: Context, Precision, Methode, Kind
// OUTPUT: Object/Algorithm mit nativem Handle
// NEBENEFFEKTE: Native Aufrufe erst nach erfolgreicher Validierung
// ABHAENGIGKEITEN: context.go, native
// HINWEISE: Abgelehnte Konstruktionen beruehren die native Seite nie

package daal

import (
	"slices"

	"github.com/7blacky7/godaal/native"
)

// Validate prueft Methode und Precision, in dieser Reihenfolge.
func Validate[M ~int](op string, prec Precision, method M, supported ...M) error {
	if !slices.Contains(supported, method) {
		return &ConfigError{Op: op, Arg: "method", Value: int(method), Err: ErrMethodUnsupported}
	}
	if !prec.Valid() {
		return &ConfigError{Op: op, Arg: "precision", Value: int(prec), Err: ErrTypeUnsupported}
	}
	return nil
}

// ============================================================================
// Proxy / Object
// ============================================================================

// Proxy ist jedes Objekt, das ein natives Handle unter einem Context haelt.
type Proxy interface {
	Handle() native.Handle
	Kind() native.Kind
	Context() *Context
}

// Companion ist ein benanntes Unterobjekt eines Proxies.
type Companion struct {
	Name   string        `json:"name"`
	Handle native.Handle `json:"handle"`
}

// CompanionLister wird von Proxies mit Forward/Backward/Parameter-Unterobjekten implementiert.
type CompanionLister interface {
	Companions() ([]Companion, error)
}

// Object ist ein Handle mit Kind und Context; der Handle gehoert der nativen Seite.
type Object struct {
	ctx    *Context
	kind   native.Kind
	handle native.Handle
}

// NewObject bindet ein bereits vorhandenes Handle.
func NewObject(ctx *Context, kind native.Kind, h native.Handle) Object {
	return Object{ctx: ctx, kind: kind, handle: h}
}

// NewResultObject erzeugt ein leeres natives Result-/Input-Objekt.
func NewResultObject(ctx *Context, kind native.Kind) (Object, error) {
	h, err := ctx.Acquire(string(kind)+" new", func(lib native.Library, c native.Handle) (native.Handle, error) {
		return lib.NewResult(c, kind)
	})
	if err != nil {
		return Object{}, err
	}
	return NewObject(ctx, kind, h), nil
}

func (o Object) Handle() native.Handle { return o.handle }
func (o Object) Kind() native.Kind     { return o.kind }
func (o Object) Context() *Context     { return o.ctx }

// Valid prueft ob das Objekt gebunden ist und sein Context offen ist.
func (o Object) Valid() bool {
	return !o.handle.IsZero() && o.ctx != nil && !o.ctx.Closed()
}

// Value liest das per id adressierte Teilobjekt; 0 bedeutet nicht gesetzt.
func (o Object) Value(id int) (native.Handle, error) {
	var h native.Handle
	err := o.ctx.Do(string(o.kind)+" get", func(lib native.Library) (err error) {
		h, err = lib.GetValue(o.kind, o.handle, id)
		return err
	})
	return h, err
}

// SetValue setzt das per id adressierte Teilobjekt.
func (o Object) SetValue(id int, value native.Handle) error {
	return o.ctx.Do(string(o.kind)+" set", func(lib native.Library) error {
		return lib.SetValue(o.kind, o.handle, id, value)
	})
}

// Scalar liest einen skalaren Wert des Objekts.
func (o Object) Scalar(id int) (int64, error) {
	var v int64
	err := o.ctx.Do(string(o.kind)+" get scalar", func(lib native.Library) (err error) {
		v, err = lib.GetScalar(o.kind, o.handle, id)
		return err
	})
	return v, err
}

// SetScalar setzt einen skalaren Wert des Objekts.
func (o Object) SetScalar(id int, value int64) error {
	return o.ctx.Do(string(o.kind)+" set scalar", func(lib native.Library) error {
		return lib.SetScalar(o.kind, o.handle, id, value)
	})
}

// ============================================================================
// Algorithm
// ============================================================================

// Algorithm ist ein konfigurierter Proxy mit validierten Selektoren.
type Algorithm[M ~int] struct {
	Object
	prec   Precision
	method M
}

// NewAlgorithm validiert prec und method und fordert erst dann das native Objekt an.
// args werden unveraendert an den nativen Initialisierer gereicht.
func NewAlgorithm[M ~int](ctx *Context, kind native.Kind, prec Precision, method M, supported []M, args ...int64) (*Algorithm[M], error) {
	if err := Validate(string(kind), prec, method, supported...); err != nil {
		return nil, err
	}

	h, err := ctx.Acquire(string(kind)+" init", func(lib native.Library, c native.Handle) (native.Handle, error) {
		return lib.Init(c, kind, int(prec), int(method), args...)
	})
	if err != nil {
		return nil, err
	}

	return &Algorithm[M]{Object: NewObject(ctx, kind, h), prec: prec, method: method}, nil
}

// NoMethod ist der Methodentyp fuer Algorithmen ohne Precision- und Methodenwahl.
type NoMethod int

// NewBareAlgorithm konstruiert einen Algorithmus ohne Selektoren; die native
// Seite erhaelt Precision und Methode 0.
func NewBareAlgorithm(ctx *Context, kind native.Kind, args ...int64) (*Algorithm[NoMethod], error) {
	return NewAlgorithm(ctx, kind, DoublePrecision, NoMethod(0), []NoMethod{0}, args...)
}

func (a *Algorithm[M]) Precision() Precision { return a.prec }
func (a *Algorithm[M]) Method() M            { return a.method }

// Component liefert das Unterobjekt comp mit denselben Selektoren.
func (a *Algorithm[M]) Component(comp native.Component) (native.Handle, error) {
	return a.ctx.Acquire(string(a.kind)+" "+comp.String(), func(lib native.Library, c native.Handle) (native.Handle, error) {
		return lib.Get(c, a.kind, comp, a.handle, int(a.prec), int(a.method))
	})
}

// SetComponent ersetzt das Unterobjekt comp.
func (a *Algorithm[M]) SetComponent(comp native.Component, value native.Handle) error {
	return a.ctx.Do(string(a.kind)+" set "+comp.String(), func(lib native.Library) error {
		return lib.Set(a.kind, comp, a.handle, int(a.prec), int(a.method), value)
	})
}

// Compute fuehrt den Algorithmus mit seinen Selektoren aus.
func (a *Algorithm[M]) Compute() error {
	return a.ctx.Do(string(a.kind)+" compute", func(lib native.Library) error {
		return lib.Compute(a.kind, a.handle, int(a.prec), int(a.method))
	})
}

// Clone erzeugt einen neuen Proxy ueber einer nativen Kopie.
func (a *Algorithm[M]) Clone() (*Algorithm[M], error) {
	h, err := a.Component(native.ComponentClone)
	if err != nil {
		return nil, err
	}
	return &Algorithm[M]{Object: NewObject(a.ctx, a.kind, h), prec: a.prec, method: a.method}, nil
}
