// MODUL: table_test
// ZWECK: Unit-Tests fuer die In-Process Handle-Tabelle
// INPUT: Keine
// OUTPUT: Test-Ergebnisse
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: testing (stdlib), testify, table.go
// HINWEISE: Die Tabelle ist der Stand-in fuer die native Bibliothek in allen Paket-Tests

package native

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Context Tests
// ============================================================================

func TestTableContextScopesHandles(t *testing.T) {
	tbl := NewTable(0)

	ctx, err := tbl.NewContext()
	require.NoError(t, err)
	require.False(t, ctx.IsZero())

	h, err := tbl.Init(ctx, "k.Batch", 0, 0)
	require.NoError(t, err)
	assert.False(t, h.IsZero())
	assert.Equal(t, 1, tbl.Live())

	require.NoError(t, tbl.DisposeContext(ctx))
	assert.Equal(t, 0, tbl.Live())

	// Nach Dispose sind Handles und Context unbekannt
	_, err = tbl.Get(ctx, "k.Batch", ComponentForward, h, 0, 0)
	assert.ErrorIs(t, err, ErrUnknownHandle)

	err = tbl.DisposeContext(ctx)
	assert.ErrorIs(t, err, ErrUnknownHandle)
}

func TestTableContextsAreIndependent(t *testing.T) {
	tbl := NewTable(0)

	a, _ := tbl.NewContext()
	b, _ := tbl.NewContext()
	assert.NotEqual(t, a, b)

	ha, err := tbl.Init(a, "k", 0, 0)
	require.NoError(t, err)
	hb, err := tbl.Init(b, "k", 0, 0)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)

	require.NoError(t, tbl.DisposeContext(a))

	_, ok := tbl.KindOf(hb)
	assert.True(t, ok, "Handle aus Context b sollte weiterleben")

	// Handle aus a darf nicht mit Context b verwendet werden
	_, err = tbl.Get(b, "k", ComponentForward, ha, 0, 0)
	assert.ErrorIs(t, err, ErrUnknownHandle)
}

// ============================================================================
// Companion Tests
// ============================================================================

func TestTableCompanionsAreStable(t *testing.T) {
	tbl := NewTable(0)
	ctx, _ := tbl.NewContext()

	h, err := tbl.Init(ctx, "layer.Batch", 1, 0)
	require.NoError(t, err)

	fwd1, err := tbl.Get(ctx, "layer.Batch", ComponentForward, h, 1, 0)
	require.NoError(t, err)
	fwd2, err := tbl.Get(ctx, "layer.Batch", ComponentForward, h, 1, 0)
	require.NoError(t, err)
	bwd, err := tbl.Get(ctx, "layer.Batch", ComponentBackward, h, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, fwd1, fwd2)
	assert.NotEqual(t, fwd1, bwd)

	kind, ok := tbl.KindOf(fwd1)
	require.True(t, ok)
	assert.Equal(t, Kind("layer.Batch.forward"), kind)
}

func TestTableCloneIsFresh(t *testing.T) {
	tbl := NewTable(0)
	ctx, _ := tbl.NewContext()

	h, _ := tbl.Init(ctx, "algo.Batch", 0, 0)
	c1, err := tbl.Get(ctx, "algo.Batch", ComponentClone, h, 0, 0)
	require.NoError(t, err)
	c2, err := tbl.Get(ctx, "algo.Batch", ComponentClone, h, 0, 0)
	require.NoError(t, err)

	assert.NotEqual(t, c1, c2)
	assert.NotEqual(t, h, c1)

	kind, _ := tbl.KindOf(c1)
	assert.Equal(t, Kind("algo.Batch"), kind)
}

func TestTableSetReplacesCompanion(t *testing.T) {
	tbl := NewTable(0)
	ctx, _ := tbl.NewContext()

	h, _ := tbl.Init(ctx, "algo.Batch", 0, 0)
	res, _ := tbl.NewResult(ctx, "algo.Result")

	require.NoError(t, tbl.Set("algo.Batch", ComponentResult, h, 0, 0, res))

	got, err := tbl.Get(ctx, "algo.Batch", ComponentResult, h, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, res, got)

	err = tbl.Set("algo.Batch", ComponentResult, h, 0, 0, Handle(9999))
	assert.ErrorIs(t, err, ErrUnknownHandle)
}

// ============================================================================
// Value Tests
// ============================================================================

func TestTableValues(t *testing.T) {
	tbl := NewTable(0)
	ctx, _ := tbl.NewContext()

	res, _ := tbl.NewResult(ctx, "layer.ForwardResult")
	val, _ := tbl.NewResult(ctx, "tensor")

	got, err := tbl.GetValue("layer.ForwardResult", res, 2)
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "nicht gesetzter Wert sollte 0 sein")

	require.NoError(t, tbl.SetValue("layer.ForwardResult", res, 2, val))

	got, err = tbl.GetValue("layer.ForwardResult", res, 2)
	require.NoError(t, err)
	assert.Equal(t, val, got)

	_, err = tbl.GetValue("layer.ForwardResult", Handle(4242), 2)
	assert.ErrorIs(t, err, ErrUnknownHandle)
}

func TestTableRejectsForeignContextValues(t *testing.T) {
	tbl := NewTable(0)
	ctxA, _ := tbl.NewContext()
	ctxB, _ := tbl.NewContext()

	alg, _ := tbl.Init(ctxA, "k.Batch", 0, 0)
	res, _ := tbl.NewResult(ctxA, "k.Result")
	foreign, _ := tbl.NewResult(ctxB, "tensor")

	err := tbl.Set("k.Batch", ComponentResult, alg, 0, 0, foreign)
	assert.ErrorIs(t, err, ErrUnknownHandle)

	err = tbl.SetValue("k.Result", res, 0, foreign)
	assert.ErrorIs(t, err, ErrUnknownHandle)

	// Nach Dispose von B darf kein Verweis auf das freigegebene Handle bleiben
	require.NoError(t, tbl.DisposeContext(ctxB))
	got, err := tbl.GetValue("k.Result", res, 0)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestTableScalars(t *testing.T) {
	tbl := NewTable(0)
	ctx, _ := tbl.NewContext()
	par, _ := tbl.NewResult(ctx, "pca.transform.Parameter")

	v, err := tbl.GetScalar("pca.transform.Parameter", par, 0)
	require.NoError(t, err)
	assert.Zero(t, v)

	require.NoError(t, tbl.SetScalar("pca.transform.Parameter", par, 0, 7))
	v, err = tbl.GetScalar("pca.transform.Parameter", par, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	require.NoError(t, tbl.DisposeContext(ctx))
	_, err = tbl.GetScalar("pca.transform.Parameter", par, 0)
	assert.ErrorIs(t, err, ErrUnknownHandle)
	assert.ErrorIs(t, tbl.SetScalar("pca.transform.Parameter", par, 0, 1), ErrUnknownHandle)
}

func TestTableCompute(t *testing.T) {
	tbl := NewTable(0)
	ctx, _ := tbl.NewContext()
	alg, _ := tbl.Init(ctx, "quality_metric_set.Batch", 0, 0)

	require.NoError(t, tbl.Compute("quality_metric_set.Batch", alg, 0, 0))
	assert.ErrorIs(t, tbl.Compute("quality_metric_set.Batch", Handle(4242), 0, 0), ErrUnknownHandle)
	assert.Equal(t, 2, tbl.Calls(OpCompute))
	assert.Equal(t, 1, tbl.Acquisitions())
}

// ============================================================================
// Limit und Instrumentierung
// ============================================================================

func TestTableHandleLimit(t *testing.T) {
	tbl := NewTable(2)
	ctx, _ := tbl.NewContext()

	_, err := tbl.Init(ctx, "k", 0, 0)
	require.NoError(t, err)
	_, err = tbl.NewResult(ctx, "r")
	require.NoError(t, err)

	_, err = tbl.Init(ctx, "k", 0, 0)
	require.ErrorIs(t, err, ErrHandleLimit)

	var libErr *LibraryError
	require.True(t, errors.As(err, &libErr))
	assert.Equal(t, OpInit, libErr.Op)
	assert.Equal(t, "k", libErr.Name)
}

func TestTableCalls(t *testing.T) {
	tbl := NewTable(0)
	ctx, _ := tbl.NewContext()

	h, _ := tbl.Init(ctx, "k", 0, 0, 4, 5)
	_, _ = tbl.Get(ctx, "k", ComponentParameter, h, 0, 0)
	_, _ = tbl.NewResult(ctx, "r")

	assert.Equal(t, 1, tbl.Calls(OpNewContext))
	assert.Equal(t, 1, tbl.Calls(OpInit))
	assert.Equal(t, 1, tbl.Calls(OpGet))
	assert.Equal(t, 0, tbl.Calls(OpSet))
	assert.Equal(t, 3, tbl.Acquisitions())
	assert.Equal(t, TableVersion, tbl.Version())
}
