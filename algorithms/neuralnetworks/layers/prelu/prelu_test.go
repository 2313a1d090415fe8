package prelu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7blacky7/godaal/algorithms/neuralnetworks/layers"
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

func TestBackwardResult(t *testing.T) {
	tbl := native.NewTable(0)
	ctx, err := daal.NewContext(tbl)
	require.NoError(t, err)
	defer ctx.Close()

	res, err := NewBackwardResult(ctx)
	require.NoError(t, err)
	assert.False(t, res.Handle().IsZero())
	assert.Equal(t, 1, tbl.Calls(native.OpNewResult))

	grad, err := daal.NewResultObject(ctx, "tensor")
	require.NoError(t, err)
	require.NoError(t, res.Set(layers.Gradient, grad.Handle()))

	wrapped := WrapBackwardResult(ctx, res.Handle())
	got, err := wrapped.Get(layers.Gradient)
	require.NoError(t, err)
	assert.Equal(t, grad.Handle(), got)

	// Wrap fordert kein neues Objekt an
	assert.Equal(t, 2, tbl.Calls(native.OpNewResult))
}

func TestBackwardResultClosedContext(t *testing.T) {
	ctx, err := daal.NewContext(native.NewTable(0))
	require.NoError(t, err)
	require.NoError(t, ctx.Close())

	_, err = NewBackwardResult(ctx)
	assert.ErrorIs(t, err, daal.ErrContextClosed)
}
