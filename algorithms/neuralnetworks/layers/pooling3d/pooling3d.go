// Package pooling3d bindet die gemeinsamen Argument-Objekte der 3D-Pooling-Layer.
package pooling3d

import (
	"github.com/7blacky7/godaal/algorithms/neuralnetworks/layers"
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// KindBackwardInput ist der native Klassenname der Backward-Eingabe.
const KindBackwardInput native.Kind = "neural_networks.layers.pooling3d.backward.Input"

// BackwardInput ist die Eingabe eines 3D-Pooling-Backward-Layers.
type BackwardInput struct {
	layers.BackwardInput
}

// NewBackwardInput erzeugt eine leere native Backward-Eingabe.
func NewBackwardInput(ctx *daal.Context) (BackwardInput, error) {
	in, err := layers.NewBackwardInput(ctx, KindBackwardInput)
	return BackwardInput{in}, err
}

// WrapBackwardInput bindet ein vorhandenes Handle.
func WrapBackwardInput(ctx *daal.Context, h native.Handle) BackwardInput {
	return BackwardInput{layers.BackwardInput{Object: daal.NewObject(ctx, KindBackwardInput, h)}}
}

func init() {
	daal.RegisterKind(daal.KindInfo{
		Name:    KindBackwardInput,
		Package: "neuralnetworks/layers/pooling3d",
		Build:   daal.ArgumentBuilder(NewBackwardInput),
	})
}
