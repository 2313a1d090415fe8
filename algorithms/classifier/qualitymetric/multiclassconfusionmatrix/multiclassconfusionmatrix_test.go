package multiclassconfusionmatrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

func TestInputLabels(t *testing.T) {
	ctx, err := daal.NewContext(native.NewTable(0))
	require.NoError(t, err)
	defer ctx.Close()

	in, err := NewInput(ctx)
	require.NoError(t, err)

	for _, id := range []InputID{PredictedLabels, GroundTruthLabels} {
		table, err := daal.NewResultObject(ctx, "data_management.HomogenNumericTable")
		require.NoError(t, err)
		require.NoError(t, in.SetInput(id, table.Handle()))

		got, err := in.Input(id)
		require.NoError(t, err)
		assert.Equal(t, table.Handle(), got, id.String())
	}
}

func TestInputRejectsOtherIDs(t *testing.T) {
	tbl := native.NewTable(0)
	ctx, err := daal.NewContext(tbl)
	require.NoError(t, err)
	defer ctx.Close()

	in, err := NewInput(ctx)
	require.NoError(t, err)
	table, err := daal.NewResultObject(ctx, "data_management.HomogenNumericTable")
	require.NoError(t, err)

	err = in.SetInput(InputID(2), table.Handle())
	require.ErrorIs(t, err, daal.ErrUnsupportedID)
	assert.Contains(t, err.Error(), "multiclassconfusionmatrix.InputID 2")

	_, err = in.Input(InputID(-1))
	assert.ErrorIs(t, err, daal.ErrUnsupportedID)

	assert.Zero(t, tbl.Calls(native.OpSetValue))
	assert.Zero(t, tbl.Calls(native.OpGetValue))
}
