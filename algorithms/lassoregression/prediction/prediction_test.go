package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

func TestResult(t *testing.T) {
	ctx, err := daal.NewContext(native.NewTable(0))
	require.NoError(t, err)
	defer ctx.Close()

	res, err := NewResult(ctx)
	require.NoError(t, err)
	assert.Equal(t, KindResult, res.Kind())

	got, err := res.Result(Prediction)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	table, err := daal.NewResultObject(ctx, "data_management.HomogenNumericTable")
	require.NoError(t, err)
	require.NoError(t, res.SetResult(Prediction, table.Handle()))

	got, err = res.Result(Prediction)
	require.NoError(t, err)
	assert.Equal(t, table.Handle(), got)
	assert.Equal(t, "Prediction", Prediction.String())
}

func TestResultAfterClose(t *testing.T) {
	ctx, err := daal.NewContext(native.NewTable(0))
	require.NoError(t, err)

	res, err := NewResult(ctx)
	require.NoError(t, err)
	require.NoError(t, ctx.Close())

	_, err = res.Result(Prediction)
	assert.ErrorIs(t, err, daal.ErrContextClosed)
}
