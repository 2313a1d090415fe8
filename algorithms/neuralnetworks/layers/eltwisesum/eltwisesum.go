// Package eltwisesum enthaelt die Identifier des Element-wise-Sum-Layers.
package eltwisesum

import (
	"github.com/7blacky7/godaal/algorithms/neuralnetworks/layers"
	"github.com/7blacky7/godaal/daal"
)

// LayerDataID adressiert Tensor-Hilfsdaten des Layers.
type LayerDataID int

const (
	AuxCoefficients LayerDataID = LayerDataID(layers.FirstAuxID)
)

// LastLayerDataID ist der hoechste LayerDataID-Code.
const LastLayerDataID = AuxCoefficients

// LayerDataNumericTableID adressiert Numeric-Table-Hilfsdaten; die Codes folgen auf LayerDataID.
type LayerDataNumericTableID int

const (
	AuxNumberOfCoefficients LayerDataNumericTableID = LayerDataNumericTableID(LastLayerDataID) + 1
)

var (
	layerDataIDs = daal.RegisterFamily("neuralnetworks/layers/eltwisesum.LayerDataID",
		daal.Member{Name: "AuxCoefficients", Code: int(AuxCoefficients)})

	layerDataNumericTableIDs = daal.RegisterFamily("neuralnetworks/layers/eltwisesum.LayerDataNumericTableID",
		daal.Member{Name: "AuxNumberOfCoefficients", Code: int(AuxNumberOfCoefficients)})
)

func (id LayerDataID) Value() int     { return int(id) }
func (id LayerDataID) String() string { return layerDataIDs.NameOf(int(id)) }

func (id LayerDataNumericTableID) Value() int     { return int(id) }
func (id LayerDataNumericTableID) String() string { return layerDataNumericTableIDs.NameOf(int(id)) }
