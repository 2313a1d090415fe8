// MODUL: transform
// ZWECK: Binding fuer die PCA-Transformation mit einstellbarer Anzahl Komponenten
// INPUT: Context, Precision, Methode, Anzahl Komponenten
// OUTPUT: Batch und Parameter-Proxy mit NumberOfComponents
// NEBENEFFEKTE: Native Handles im Context
// ABHAENGIGKEITEN: daal, native
// HINWEISE: 0 Komponenten heisst alle Komponenten des Modells

package transform

import (
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

const (
	// Kind ist der native Klassenname des Algorithmus
	Kind native.Kind = "pca.transform.Batch"

	// KindParameter ist der native Klassenname der Parameter
	KindParameter native.Kind = "pca.transform.Parameter"
)

// scalarNumberOfComponents adressiert nComponents im Parameter-Objekt.
const scalarNumberOfComponents = 0

// Method waehlt die Berechnungsmethode.
type Method int

const (
	DefaultDense Method = 0
)

var methods = daal.RegisterFamily("pca/transform.Method",
	daal.Member{Name: "DefaultDense", Code: int(DefaultDense)})

func (m Method) Value() int     { return int(m) }
func (m Method) String() string { return methods.NameOf(int(m)) }

// Batch ist die PCA-Transformation im Batch-Modus.
type Batch struct {
	*daal.Algorithm[Method]
}

// NewBatch konstruiert die Transformation fuer nComponents Komponenten.
func NewBatch(ctx *daal.Context, prec daal.Precision, method Method, nComponents int64) (*Batch, error) {
	alg, err := daal.NewAlgorithm(ctx, Kind, prec, method, []Method{DefaultDense}, nComponents)
	if err != nil {
		return nil, err
	}
	return &Batch{alg}, nil
}

// Parameter gibt die Parameter der Transformation zurueck.
func (b *Batch) Parameter() (*Parameter, error) {
	h, err := b.Component(native.ComponentParameter)
	if err != nil {
		return nil, err
	}
	return &Parameter{daal.NewObject(b.Context(), KindParameter, h)}, nil
}

// Companions implementiert daal.CompanionLister.
func (b *Batch) Companions() ([]daal.Companion, error) {
	par, err := b.Parameter()
	if err != nil {
		return nil, err
	}
	return []daal.Companion{{Name: "parameter", Handle: par.Handle()}}, nil
}

// Parameter haelt die Einstellungen der Transformation.
type Parameter struct {
	daal.Object
}

// NumberOfComponents liest die Anzahl der Komponenten.
func (p *Parameter) NumberOfComponents() (int64, error) {
	return p.Scalar(scalarNumberOfComponents)
}

// SetNumberOfComponents setzt die Anzahl der Komponenten.
func (p *Parameter) SetNumberOfComponents(n int64) error {
	return p.SetScalar(scalarNumberOfComponents, n)
}

func init() {
	daal.RegisterKind(daal.KindInfo{
		Name:    Kind,
		Package: "pca/transform",
		Methods: methods.Members,
		Build: daal.MethodBuilder(func(ctx *daal.Context, prec daal.Precision, method Method) (*Batch, error) {
			return NewBatch(ctx, prec, method, 0)
		}),
	})
}
