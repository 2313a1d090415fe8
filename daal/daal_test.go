// MODUL: daal_test
// ZWECK: Unit-Tests fuer Precision, Identifier-Familien, Kataloge und Fehler
// INPUT: Keine
// OUTPUT: Test-Ergebnisse
// NEBENEFFEKTE: Registriert Test-Familien im globalen Katalog
// ABHAENGIGKEITEN: testing (stdlib), testify, go-cmp
// HINWEISE: Test-Familien tragen das Praefix "test/" um Kollisionen zu vermeiden

package daal

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Precision Tests
// ============================================================================

func TestPrecisionCodes(t *testing.T) {
	assert.Equal(t, 0, int(DoublePrecision))
	assert.Equal(t, 1, int(SinglePrecision))
	assert.True(t, DoublePrecision.Valid())
	assert.True(t, SinglePrecision.Valid())
	assert.False(t, Precision(2).Valid())
	assert.False(t, Precision(-1).Valid())
}

func TestPrecisionOf(t *testing.T) {
	assert.Equal(t, SinglePrecision, PrecisionOf[float32]())
	assert.Equal(t, DoublePrecision, PrecisionOf[float64]())
}

func TestPrecisionString(t *testing.T) {
	assert.Equal(t, "double", DoublePrecision.String())
	assert.Equal(t, "single", SinglePrecision.String())
	assert.Equal(t, "precision(7)", Precision(7).String())
}

func TestParsePrecision(t *testing.T) {
	cases := map[string]Precision{
		"double":  DoublePrecision,
		"float64": DoublePrecision,
		"0":       DoublePrecision,
		"Single":  SinglePrecision,
		"float32": SinglePrecision,
		" 1 ":     SinglePrecision,
	}
	for in, want := range cases {
		got, err := ParsePrecision(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePrecision("half")
	assert.ErrorIs(t, err, ErrTypeUnsupported)
}

func TestPrecisionJSON(t *testing.T) {
	b, err := json.Marshal([]Precision{DoublePrecision, SinglePrecision})
	require.NoError(t, err)
	assert.JSONEq(t, `["double","single"]`, string(b))

	var got []Precision
	require.NoError(t, json.Unmarshal([]byte(`["float32","double"]`), &got))
	assert.Equal(t, []Precision{SinglePrecision, DoublePrecision}, got)

	_, err = json.Marshal(Precision(3))
	assert.ErrorIs(t, err, ErrTypeUnsupported)
}

// ============================================================================
// Identifier Tests
// ============================================================================

func TestRegisterFamily(t *testing.T) {
	f := RegisterFamily("test/alpha.ResultID",
		Member{Name: "First", Code: 0},
		Member{Name: "Second", Code: 2},
	)

	assert.Equal(t, "alpha.ResultID", f.ShortName())
	assert.True(t, f.Has(2))
	assert.False(t, f.Has(1))
	assert.Equal(t, "Second", f.NameOf(2))
	assert.Equal(t, "alpha.ResultID(1)", f.NameOf(1))

	assert.NoError(t, f.Check(0))
	assert.ErrorIs(t, f.Check(5), ErrUnsupportedID)

	got, err := LookupFamily("test/alpha.ResultID")
	require.NoError(t, err)
	assert.Same(t, f, got)
}

func TestRegisterFamilyDuplicateCodePanics(t *testing.T) {
	assert.PanicsWithValue(t,
		"daal: family test/beta.ID: A and B share code 3",
		func() {
			RegisterFamily("test/beta.ID", Member{Name: "A", Code: 3}, Member{Name: "B", Code: 3})
		})
}

func TestRegisterFamilyDuplicateNamePanics(t *testing.T) {
	assert.Panics(t, func() {
		RegisterFamily("test/gamma.ID", Member{Name: "A", Code: 0}, Member{Name: "A", Code: 1})
	})
}

func TestRegisterFamilyTwicePanics(t *testing.T) {
	RegisterFamily("test/delta.ID", Member{Name: "A", Code: 0})
	assert.Panics(t, func() {
		RegisterFamily("test/delta.ID", Member{Name: "B", Code: 1})
	})
}

func TestFamiliesKeepOrder(t *testing.T) {
	RegisterFamily("test/order.First", Member{Name: "X", Code: 0})
	RegisterFamily("test/order.Second", Member{Name: "Y", Code: 0})

	var names []string
	for _, f := range Families() {
		names = append(names, f.Name)
	}

	first, second := -1, -1
	for i, n := range names {
		switch n {
		case "test/order.First":
			first = i
		case "test/order.Second":
			second = i
		}
	}
	require.NotEqual(t, -1, first)
	assert.Less(t, first, second)
}

func TestFamilyMembers(t *testing.T) {
	f := RegisterFamily("test/epsilon.LayerDataID",
		Member{Name: "AuxA", Code: 2},
		Member{Name: "AuxB", Code: 3},
	)

	want := []Member{{Name: "AuxA", Code: 2}, {Name: "AuxB", Code: 3}}
	if diff := cmp.Diff(want, f.Members); diff != "" {
		t.Errorf("Members mismatch (-want +got):\n%s", diff)
	}
}

// ============================================================================
// Lookup Tests
// ============================================================================

func TestLookupFamilySuggestion(t *testing.T) {
	RegisterFamily("test/zeta.ResultID", Member{Name: "Value", Code: 0})

	_, err := LookupFamily("test/zeta.ResultId")
	require.ErrorIs(t, err, ErrNotFound)

	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "family", lookupErr.What)
	assert.Equal(t, "test/zeta.ResultID", lookupErr.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "test/zeta.ResultID"?`)

	_, err = LookupFamily("etwas/voellig.Anderes")
	require.True(t, errors.As(err, &lookupErr))
	assert.Empty(t, lookupErr.Suggestion)
}

func TestKindCatalog(t *testing.T) {
	build := func(*Context, Precision, int) (Proxy, error) { return nil, nil }

	RegisterKind(KindInfo{
		Name:    "test.kind.Batch",
		Package: "test/kind",
		Methods: []Member{{Name: "DefaultDense", Code: 0}},
		Build:   build,
	})

	info, err := LookupKind("test.kind.Batch")
	require.NoError(t, err)
	assert.Equal(t, []int{0}, info.MethodCodes())
	if diff := cmp.Diff(Precisions, info.Precisions); diff != "" {
		t.Errorf("Precisions mismatch (-want +got):\n%s", diff)
	}

	assert.Panics(t, func() { RegisterKind(KindInfo{Name: "test.kind.Batch", Build: build}) })
	assert.Panics(t, func() { RegisterKind(KindInfo{Name: "test.kind.NoBuild"}) })

	_, err = LookupKind("test.kind.Btach")
	assert.ErrorIs(t, err, ErrNotFound)

	names := make([]string, 0)
	for _, k := range Kinds() {
		names = append(names, string(k.Name))
	}
	assert.Contains(t, names, "test.kind.Batch")
}

// ============================================================================
// Fehler Tests
// ============================================================================

func TestConfigError(t *testing.T) {
	err := error(&ConfigError{Op: "x.Batch", Arg: "method", Value: 3, Err: ErrMethodUnsupported})

	assert.ErrorIs(t, err, ErrMethodUnsupported)
	assert.NotErrorIs(t, err, ErrTypeUnsupported)
	assert.Equal(t, "daal: x.Batch: method 3: method unsupported", err.Error())

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	if diff := cmp.Diff(&ConfigError{Op: "x.Batch", Arg: "method", Value: 3}, cfgErr, cmpopts.IgnoreFields(ConfigError{}, "Err")); diff != "" {
		t.Errorf("ConfigError mismatch (-want +got):\n%s", diff)
	}
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "type unsupported", ErrTypeUnsupported.Error())
	assert.Equal(t, "method unsupported", ErrMethodUnsupported.Error())
}
