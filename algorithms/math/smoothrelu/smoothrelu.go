// Package smoothrelu bindet das Ergebnis der Smooth-ReLU-Funktion.
package smoothrelu

import (
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// KindResult ist der native Klassenname des Ergebnisses.
const KindResult native.Kind = "math.smoothrelu.Result"

// ResultID adressiert die Ergebnis-Tabellen.
type ResultID int

const (
	Value ResultID = 0
)

var resultIDs = daal.RegisterFamily("math/smoothrelu.ResultID",
	daal.Member{Name: "Value", Code: int(Value)})

func (id ResultID) Value() int     { return int(id) }
func (id ResultID) String() string { return resultIDs.NameOf(int(id)) }

// Result ist das Ergebnis von Smooth ReLU.
type Result struct {
	obj daal.Object
}

// NewResult erzeugt ein leeres natives Ergebnis.
func NewResult(ctx *daal.Context) (*Result, error) {
	obj, err := daal.NewResultObject(ctx, KindResult)
	if err != nil {
		return nil, err
	}
	return &Result{obj: obj}, nil
}

func (r *Result) Handle() native.Handle  { return r.obj.Handle() }
func (r *Result) Kind() native.Kind      { return r.obj.Kind() }
func (r *Result) Context() *daal.Context { return r.obj.Context() }

// Value liest die Ergebnis-Tabelle.
func (r *Result) Value() (native.Handle, error) {
	return r.obj.Value(int(Value))
}

// SetValue setzt die Ergebnis-Tabelle.
func (r *Result) SetValue(value native.Handle) error {
	return r.obj.SetValue(int(Value), value)
}

func init() {
	daal.RegisterKind(daal.KindInfo{
		Name:    KindResult,
		Package: "math/smoothrelu",
		Build:   daal.ArgumentBuilder(NewResult),
	})
}
