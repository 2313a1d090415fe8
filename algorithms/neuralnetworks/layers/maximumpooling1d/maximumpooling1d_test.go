package maximumpooling1d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

func TestNewBatch(t *testing.T) {
	tbl := native.NewTable(0)
	ctx, err := daal.NewContext(tbl)
	require.NoError(t, err)
	defer ctx.Close()

	b, err := NewBatch(ctx, daal.DoublePrecision, DefaultDense, 4)
	require.NoError(t, err)

	assert.Equal(t, int64(4), b.Dimensions())
	assert.False(t, b.Parameter().IsZero())
	assert.False(t, b.Forward().Handle().IsZero())
	assert.False(t, b.Backward().Handle().IsZero())

	kind, ok := tbl.KindOf(b.Parameter())
	require.True(t, ok)
	assert.Equal(t, Kind+".parameter", kind)

	comps, err := b.Companions()
	require.NoError(t, err)
	names := make([]string, len(comps))
	for i, c := range comps {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"parameter", "forward", "backward"}, names)
}

func TestNewBatchRejectsBeforeAcquisition(t *testing.T) {
	tbl := native.NewTable(0)
	ctx, err := daal.NewContext(tbl)
	require.NoError(t, err)
	defer ctx.Close()

	_, err = NewBatch(ctx, daal.SinglePrecision, Method(7), 3)
	assert.ErrorIs(t, err, daal.ErrMethodUnsupported)

	_, err = NewBatch(ctx, daal.Precision(-1), DefaultDense, 3)
	assert.ErrorIs(t, err, daal.ErrTypeUnsupported)

	assert.Zero(t, tbl.Acquisitions())
}
