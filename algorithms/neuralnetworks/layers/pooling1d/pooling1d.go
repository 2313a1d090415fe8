// Package pooling1d bindet die gemeinsamen Argument-Objekte der 1D-Pooling-Layer.
package pooling1d

import (
	"github.com/7blacky7/godaal/algorithms/neuralnetworks/layers"
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// KindForwardResult ist der native Klassenname des Forward-Results.
const KindForwardResult native.Kind = "neural_networks.layers.pooling1d.forward.Result"

// ForwardResult ist das Ergebnis eines 1D-Pooling-Forward-Layers.
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

func init() {
	daal.RegisterKind(daal.KindInfo{
		Name:    KindForwardResult,
		Package: "neuralnetworks/layers/pooling1d",
		Build:   daal.ArgumentBuilder(NewForwardResult),
	})
}
