// MODUL: associationrules
// ZWECK: Binding fuer den Association-Rules-Algorithmus (Apriori) im Batch-Modus
// INPUT: Context, Precision, Methode
// OUTPUT: Batch mit Parameter, Result und Clone
// NEBENEFFEKTE: Native Handles im Context
// ABHAENGIGKEITEN: daal, native
// HINWEISE: Clone liefert einen neuen Proxy mit denselben Selektoren

package associationrules

import (
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

const (
	// Kind ist der native Klassenname des Algorithmus
	Kind native.Kind = "association_rules.Batch"

	// KindResult ist der native Klassenname des Ergebnisses
	KindResult native.Kind = "association_rules.Result"
)

// Method waehlt die Berechnungsmethode.
type Method int

const (
	Apriori Method = 0
)

var methods = daal.RegisterFamily("associationrules.Method",
	daal.Member{Name: "Apriori", Code: int(Apriori)})

func (m Method) Value() int     { return int(m) }
func (m Method) String() string { return methods.NameOf(int(m)) }

// Batch ist der Association-Rules-Algorithmus im Batch-Modus.
type Batch struct {
	*daal.Algorithm[Method]
}

// NewBatch konstruiert den Algorithmus; nur Apriori wird unterstuetzt.
func NewBatch(ctx *daal.Context, prec daal.Precision, method Method) (*Batch, error) {
	alg, err := daal.NewAlgorithm(ctx, Kind, prec, method, []Method{Apriori})
	if err != nil {
		return nil, err
	}
	return &Batch{alg}, nil
}

// Parameter gibt das Handle der Algorithmus-Parameter zurueck.
func (b *Batch) Parameter() (native.Handle, error) {
	return b.Component(native.ComponentParameter)
}

// Result gibt das Handle des aktuellen Ergebnisses zurueck.
func (b *Batch) Result() (native.Handle, error) {
	return b.Component(native.ComponentResult)
}

// SetResult registriert ein vom Aufrufer erzeugtes Ergebnis.
func (b *Batch) SetResult(result native.Handle) error {
	return b.SetComponent(native.ComponentResult, result)
}

// Clone erzeugt einen neuen Batch ueber einer nativen Kopie.
func (b *Batch) Clone() (*Batch, error) {
	alg, err := b.Algorithm.Clone()
	if err != nil {
		return nil, err
	}
	return &Batch{alg}, nil
}

// Companions listet Parameter und Result.
func (b *Batch) Companions() ([]daal.Companion, error) {
	par, err := b.Parameter()
	if err != nil {
		return nil, err
	}
	res, err := b.Result()
	if err != nil {
		return nil, err
	}
	return []daal.Companion{{Name: "parameter", Handle: par}, {Name: "result", Handle: res}}, nil
}

// NewResult erzeugt ein leeres natives Ergebnis fuer SetResult.
func NewResult(ctx *daal.Context) (daal.Object, error) {
	return daal.NewResultObject(ctx, KindResult)
}

func init() {
	daal.RegisterKind(daal.KindInfo{
		Name:    Kind,
		Package: "associationrules",
		Methods: methods.Members,
		Build:   daal.MethodBuilder(NewBatch),
	})
	daal.RegisterKind(daal.KindInfo{
		Name:    KindResult,
		Package: "associationrules",
		Build:   daal.ArgumentBuilder(NewResult),
	})
}
