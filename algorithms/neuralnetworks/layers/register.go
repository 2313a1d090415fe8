package layers

import (
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// Package ist der Katalogname dieses Pakets.
const Package = "neuralnetworks/layers"

func init() {
	register := func(kind native.Kind, b daal.Builder) {
		daal.RegisterKind(daal.KindInfo{Name: kind, Package: Package, Build: b})
	}

	register(KindForwardInput, daal.ArgumentBuilder(func(ctx *daal.Context) (ForwardInput, error) {
		obj, err := daal.NewResultObject(ctx, KindForwardInput)
		return ForwardInput{obj}, err
	}))
	register(KindForwardResult, daal.ArgumentBuilder(func(ctx *daal.Context) (ForwardResult, error) {
		return NewForwardResult(ctx, KindForwardResult)
	}))
	register(KindBackwardInput, daal.ArgumentBuilder(func(ctx *daal.Context) (BackwardInput, error) {
		return NewBackwardInput(ctx, KindBackwardInput)
	}))
	register(KindBackwardResult, daal.ArgumentBuilder(func(ctx *daal.Context) (BackwardResult, error) {
		return NewBackwardResult(ctx, KindBackwardResult)
	}))
}
