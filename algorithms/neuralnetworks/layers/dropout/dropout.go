// MODUL: dropout
// ZWECK: Identifier und Forward-Result des Dropout-Layers
// INPUT: Context, LayerDataID
// OUTPUT: ForwardResult mit Zugriff auf die Retain-Maske
// NEBENEFFEKTE: Native Aufrufe nur fuer AuxRetainMask
// ABHAENGIGKEITEN: layers, daal, native
// HINWEISE: Andere Codes werden vor dem nativen Aufruf mit ErrUnsupportedID abgelehnt

package dropout

import (
	"github.com/7blacky7/godaal/algorithms/neuralnetworks/layers"
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// KindForwardResult ist der native Klassenname des Forward-Results.
const KindForwardResult native.Kind = "neural_networks.layers.dropout.forward.Result"

// LayerDataID adressiert die Hilfsdaten des Dropout-Layers.
type LayerDataID int

const (
	AuxRetainMask LayerDataID = LayerDataID(layers.FirstAuxID)
)

var layerDataIDs = daal.RegisterFamily("neuralnetworks/layers/dropout.LayerDataID",
	daal.Member{Name: "AuxRetainMask", Code: int(AuxRetainMask)})

func (id LayerDataID) Value() int     { return int(id) }
func (id LayerDataID) String() string { return layerDataIDs.NameOf(int(id)) }

// ForwardResult ist das Ergebnis des Dropout-Forward-Layers.
type ForwardResult struct {
	layers.ForwardResult
}

// NewForwardResult erzeugt ein leeres natives Forward-Result.
func NewForwardResult(ctx *daal.Context) (ForwardResult, error) {
	r, err := layers.NewForwardResult(ctx, KindForwardResult)
	return ForwardResult{r}, err
}

// WrapForwardResult bindet ein vorhandenes Handle.
func WrapForwardResult(ctx *daal.Context, h native.Handle) ForwardResult {
	return ForwardResult{layers.ForwardResult{Object: daal.NewObject(ctx, KindForwardResult, h)}}
}

// Value liest den Tensor zu id; nur AuxRetainMask ist zulaessig.
func (r ForwardResult) Value(id LayerDataID) (native.Handle, error) {
	if err := layerDataIDs.Check(int(id)); err != nil {
		return 0, err
	}
	return r.Object.Value(int(id))
}

// SetValue setzt den Tensor zu id; nur AuxRetainMask ist zulaessig.
func (r ForwardResult) SetValue(id LayerDataID, value native.Handle) error {
	if err := layerDataIDs.Check(int(id)); err != nil {
		return err
	}
	return r.Object.SetValue(int(id), value)
}

func init() {
	daal.RegisterKind(daal.KindInfo{
		Name:    KindForwardResult,
		Package: "neuralnetworks/layers/dropout",
		Build:   daal.ArgumentBuilder(NewForwardResult),
	})
}
