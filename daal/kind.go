package daal

import (
	"github.com/7blacky7/godaal/native"
)

// Builder konstruiert einen Proxy generisch ueber Integer-Codes.
type Builder func(ctx *Context, prec Precision, method int) (Proxy, error)

// KindInfo beschreibt einen konstruierbaren Proxy fuer Werkzeuge (CLI, Server, Probe).
// Argument-Objekte (Results, Inputs) haben keine Methoden und werden ohne Selektoren gebaut.
type KindInfo struct {
	Name       native.Kind `json:"name"`
	Package    string      `json:"package"`
	Methods    []Member    `json:"methods"`
	Precisions []Precision `json:"precisions"`

	Build Builder `json:"-"`
}

// Selectors prueft ob der Kind Precision und Methode erwartet.
func (k KindInfo) Selectors() bool {
	return len(k.Methods) > 0
}

// MethodCodes gibt die unterstuetzten Methoden-Codes zurueck.
func (k KindInfo) MethodCodes() []int {
	codes := make([]int, len(k.Methods))
	for i, m := range k.Methods {
		codes[i] = m.Code
	}
	return codes
}

var kinds = newCatalog[KindInfo]("kind")

// RegisterKind registriert einen Proxy-Konstruktor. Panic bei doppeltem Namen.
func RegisterKind(info KindInfo) {
	if info.Build == nil {
		panic("daal: kind without builder: " + string(info.Name))
	}
	if len(info.Methods) > 0 && len(info.Precisions) == 0 {
		info.Precisions = Precisions
	}
	kinds.add(string(info.Name), info)
}

// Kinds gibt alle Kinds in Registrierungsreihenfolge zurueck.
func Kinds() []KindInfo {
	return kinds.list()
}

// LookupKind sucht einen Kind ueber seinen Namen.
func LookupKind(name string) (KindInfo, error) {
	return kinds.get(name)
}

// MethodBuilder passt einen typisierten Konstruktor an Builder an.
func MethodBuilder[M ~int, P Proxy](newFn func(*Context, Precision, M) (P, error)) Builder {
	return func(ctx *Context, prec Precision, method int) (Proxy, error) {
		p, err := newFn(ctx, prec, M(method))
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

// ArgumentBuilder passt einen Konstruktor ohne Selektoren an Builder an.
func ArgumentBuilder[P Proxy](newFn func(*Context) (P, error)) Builder {
	return func(ctx *Context, _ Precision, _ int) (Proxy, error) {
		p, err := newFn(ctx)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}
