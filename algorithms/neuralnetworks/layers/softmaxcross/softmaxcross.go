// Package softmaxcross enthaelt die Identifier des Softmax-Cross-Entropy-Loss-Layers.
package softmaxcross

import (
	"github.com/7blacky7/godaal/algorithms/neuralnetworks/layers"
	"github.com/7blacky7/godaal/daal"
)

// LayerDataID adressiert die Hilfsdaten, die Forward- und Backward-Layer teilen.
type LayerDataID int

const (
	AuxProbabilities LayerDataID = LayerDataID(layers.FirstAuxID) + iota
	AuxGroundTruth
)

var layerDataIDs = daal.RegisterFamily("neuralnetworks/layers/softmaxcross.LayerDataID",
	daal.Member{Name: "AuxProbabilities", Code: int(AuxProbabilities)},
	daal.Member{Name: "AuxGroundTruth", Code: int(AuxGroundTruth)})

func (id LayerDataID) Value() int     { return int(id) }
func (id LayerDataID) String() string { return layerDataIDs.NameOf(int(id)) }
