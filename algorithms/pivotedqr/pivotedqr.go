// Package pivotedqr bindet die QR-Zerlegung mit Spaltenpivotisierung.
package pivotedqr

import (
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

const (
	// Kind ist der native Klassenname des Algorithmus
	Kind native.Kind = "pivoted_qr.Batch"

	// KindParameter ist der native Klassenname der Parameter
	KindParameter native.Kind = "pivoted_qr.Parameter"
)

// valuePermutedColumns adressiert die Permutationstabelle im Parameter-Objekt.
const valuePermutedColumns = 0

// Method waehlt die Berechnungsmethode.
type Method int

const (
	DefaultDense Method = 0
)

var methods = daal.RegisterFamily("pivotedqr.Method",
	daal.Member{Name: "DefaultDense", Code: int(DefaultDense)})

func (m Method) Value() int     { return int(m) }
func (m Method) String() string { return methods.NameOf(int(m)) }

// Batch ist die pivotisierte QR-Zerlegung im Batch-Modus.
type Batch struct {
	*daal.Algorithm[Method]
}

// NewBatch konstruiert den Algorithmus; nur DefaultDense wird unterstuetzt.
func NewBatch(ctx *daal.Context, prec daal.Precision, method Method) (*Batch, error) {
	alg, err := daal.NewAlgorithm(ctx, Kind, prec, method, []Method{DefaultDense})
	if err != nil {
		return nil, err
	}
	return &Batch{alg}, nil
}

// Parameter gibt die Parameter der Zerlegung zurueck.
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

// Parameter haelt die Permutation der Spalten.
type Parameter struct {
	daal.Object
}

// PermutedColumns liest die Tabelle der permutierten Spalten; 0 wenn nicht gesetzt.
func (p *Parameter) PermutedColumns() (native.Handle, error) {
	return p.Value(valuePermutedColumns)
}

// SetPermutedColumns setzt die Tabelle der permutierten Spalten.
func (p *Parameter) SetPermutedColumns(table native.Handle) error {
	return p.SetValue(valuePermutedColumns, table)
}

func init() {
	daal.RegisterKind(daal.KindInfo{
		Name:    Kind,
		Package: "pivotedqr",
		Methods: methods.Members,
		Build:   daal.MethodBuilder(NewBatch),
	})
}
