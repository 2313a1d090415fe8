// Package maximumpooling2d enthaelt die Identifier des 2D-Maximum-Pooling-Layers.
package maximumpooling2d

import (
	"github.com/7blacky7/godaal/algorithms/neuralnetworks/layers"
	"github.com/7blacky7/godaal/daal"
)

// LayerDataNumericTableID adressiert Numeric-Table-Hilfsdaten des Layers.
type LayerDataNumericTableID int

const (
	AuxInputDimensions LayerDataNumericTableID = LayerDataNumericTableID(layers.FirstAuxID)
)

var layerDataNumericTableIDs = daal.RegisterFamily("neuralnetworks/layers/maximumpooling2d.LayerDataNumericTableID",
	daal.Member{Name: "AuxInputDimensions", Code: int(AuxInputDimensions)})

func (id LayerDataNumericTableID) Value() int     { return int(id) }
func (id LayerDataNumericTableID) String() string { return layerDataNumericTableIDs.NameOf(int(id)) }
