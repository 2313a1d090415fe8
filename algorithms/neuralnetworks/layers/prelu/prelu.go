// Package prelu bindet das Backward-Result des PReLU-Layers.
package prelu

import (
	"github.com/7blacky7/godaal/algorithms/neuralnetworks/layers"
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// KindBackwardResult ist der native Klassenname des Backward-Results.
const KindBackwardResult native.Kind = "neural_networks.layers.prelu.backward.Result"

// BackwardResult ist das Ergebnis des PReLU-Backward-Layers.
type BackwardResult struct {
	layers.BackwardResult
}

// NewBackwardResult erzeugt ein neues natives Backward-Result.
func NewBackwardResult(ctx *daal.Context) (BackwardResult, error) {
	r, err := layers.NewBackwardResult(ctx, KindBackwardResult)
	return BackwardResult{r}, err
}

// WrapBackwardResult uebernimmt ein vorhandenes Handle, z.B. aus einem Backward-Layer.
func WrapBackwardResult(ctx *daal.Context, h native.Handle) BackwardResult {
	return BackwardResult{layers.BackwardResult{Object: daal.NewObject(ctx, KindBackwardResult, h)}}
}

func init() {
	daal.RegisterKind(daal.KindInfo{
		Name:    KindBackwardResult,
		Package: "neuralnetworks/layers/prelu",
		Build:   daal.ArgumentBuilder(NewBackwardResult),
	})
}
