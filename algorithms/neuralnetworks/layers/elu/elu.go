// Package elu bindet den ELU-Layer (exponential linear unit).
package elu

import (
	"github.com/7blacky7/godaal/algorithms/neuralnetworks/layers"
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// Kind ist der native Klassenname des Layers.
const Kind native.Kind = "neural_networks.layers.elu.Batch"

// Method waehlt die Berechnungsmethode.
type Method int

const (
	DefaultDense Method = 0
)

var methods = daal.RegisterFamily("neuralnetworks/layers/elu.Method",
	daal.Member{Name: "DefaultDense", Code: int(DefaultDense)})

func (m Method) Value() int     { return int(m) }
func (m Method) String() string { return methods.NameOf(int(m)) }

// Batch ist der ELU-Layer im Batch-Modus.
type Batch struct {
	*layers.Batch[Method]
}

// NewBatch konstruiert den Layer; nur DefaultDense wird unterstuetzt.
func NewBatch(ctx *daal.Context, prec daal.Precision, method Method) (*Batch, error) {
	b, err := layers.NewBatch(ctx, Kind, prec, method, []Method{DefaultDense})
	if err != nil {
		return nil, err
	}
	return &Batch{b}, nil
}

func init() {
	daal.RegisterKind(daal.KindInfo{
		Name:    Kind,
		Package: "neuralnetworks/layers/elu",
		Methods: methods.Members,
		Build:   daal.MethodBuilder(NewBatch),
	})
}
