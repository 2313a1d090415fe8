// MODUL: maximumpooling1d
// ZWECK: Binding fuer den 1D-Maximum-Pooling-Layer
// INPUT: Context, Precision, Methode, Anzahl Dimensionen des Eingabetensors
// OUTPUT: Batch mit Parameter-, Forward- und Backward-Handle
// NEBENEFFEKTE: Native Handles im Context
// ABHAENGIGKEITEN: layers, daal, native
// HINWEISE: nDim wird unveraendert an den nativen Initialisierer gereicht

package maximumpooling1d

import (
	"github.com/7blacky7/godaal/algorithms/neuralnetworks/layers"
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// Kind ist der native Klassenname des Layers.
const Kind native.Kind = "neural_networks.layers.maximum_pooling1d.Batch"

// DefaultDimensions wird von generischen Werkzeugen (probe, server) als nDim verwendet.
const DefaultDimensions = 3

// Method waehlt die Berechnungsmethode.
type Method int

const (
	DefaultDense Method = 0
)

var methods = daal.RegisterFamily("neuralnetworks/layers/maximumpooling1d.Method",
	daal.Member{Name: "DefaultDense", Code: int(DefaultDense)})

func (m Method) Value() int     { return int(m) }
func (m Method) String() string { return methods.NameOf(int(m)) }

// Batch ist der 1D-Maximum-Pooling-Layer im Batch-Modus.
type Batch struct {
	*layers.Batch[Method]

	nDim      int64
	parameter native.Handle
}

// NewBatch konstruiert den Layer fuer Eingabetensoren mit nDim Dimensionen.
func NewBatch(ctx *daal.Context, prec daal.Precision, method Method, nDim int64) (*Batch, error) {
	b, err := layers.NewBatch(ctx, Kind, prec, method, []Method{DefaultDense}, nDim)
	if err != nil {
		return nil, err
	}

	par, err := b.Component(native.ComponentParameter)
	if err != nil {
		return nil, err
	}

	return &Batch{Batch: b, nDim: nDim, parameter: par}, nil
}

// Dimensions gibt nDim aus der Konstruktion zurueck.
func (b *Batch) Dimensions() int64 {
	return b.nDim
}

// Parameter gibt das Handle des Layer-Parameters zurueck.
func (b *Batch) Parameter() native.Handle {
	return b.parameter
}

// Companions listet Parameter, Forward- und Backward-Handle.
func (b *Batch) Companions() ([]daal.Companion, error) {
	comps, err := b.Batch.Companions()
	if err != nil {
		return nil, err
	}
	return append([]daal.Companion{{Name: "parameter", Handle: b.parameter}}, comps...), nil
}

func init() {
	daal.RegisterKind(daal.KindInfo{
		Name:    Kind,
		Package: "neuralnetworks/layers/maximumpooling1d",
		Methods: methods.Members,
		Build: daal.MethodBuilder(func(ctx *daal.Context, prec daal.Precision, method Method) (*Batch, error) {
			return NewBatch(ctx, prec, method, DefaultDimensions)
		}),
	})
}
