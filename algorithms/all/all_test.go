package all

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// TestDocumentedCodes prueft die festgeschriebenen Codes aller Familien.
func TestDocumentedCodes(t *testing.T) {
	want := map[string][]daal.Member{
		"gbt/regression/training.DistributedPartialResultStep6ID": {{Name: "PartialModel", Code: 0}},
		"neuralnetworks/layers/softmaxcross.LayerDataID": {
			{Name: "AuxProbabilities", Code: 2},
			{Name: "AuxGroundTruth", Code: 3},
		},
		"neuralnetworks/layers/maximumpooling2d.LayerDataNumericTableID": {{Name: "AuxInputDimensions", Code: 2}},
		"neuralnetworks/layers/dropout.LayerDataID":                      {{Name: "AuxRetainMask", Code: 2}},
		"neuralnetworks/layers.ForwardInputID":                           {{Name: "Data", Code: 0}},
		"neuralnetworks/layers.ForwardResultID":                          {{Name: "Value", Code: 0}},
		"neuralnetworks/layers.ForwardResultLayerDataID":                 {{Name: "ResultForBackward", Code: 1}},
		"neuralnetworks/layers.BackwardInputID":                          {{Name: "InputGradient", Code: 0}},
		"neuralnetworks/layers.BackwardInputLayerDataID":                 {{Name: "InputFromForward", Code: 1}},
		"neuralnetworks/layers.BackwardResultID":                         {{Name: "Gradient", Code: 0}},
		"neuralnetworks/layers.InputLayout": {
			{Name: "TensorInput", Code: 0},
			{Name: "CollectionInput", Code: 1},
		},
		"neuralnetworks/layers.ResultLayout": {
			{Name: "CollectionResult", Code: 0},
			{Name: "TensorResult", Code: 1},
		},
		"math/smoothrelu.ResultID":                             {{Name: "Value", Code: 0}},
		"implicitals/training.DistributedPartialResultStep3ID": {{Name: "OutputOfStep3ForStep4", Code: 0}},
		"decisiontree/regression/training.InputID": {
			{Name: "Data", Code: 0},
			{Name: "DependentVariables", Code: 1},
		},
		"lassoregression/prediction.ResultID": {{Name: "Prediction", Code: 0}},
		"classifier/qualitymetric/multiclassconfusionmatrix.InputID": {
			{Name: "PredictedLabels", Code: 0},
			{Name: "GroundTruthLabels", Code: 1},
		},
	}

	for name, members := range want {
		f, err := daal.LookupFamily(name)
		if !assert.NoError(t, err) {
			continue
		}
		if diff := cmp.Diff(members, f.Members); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}
}

// TestCodesPairwiseDistinct prueft die Eindeutigkeit innerhalb jeder Familie.
func TestCodesPairwiseDistinct(t *testing.T) {
	for _, f := range daal.Families() {
		seen := make(map[int]string)
		for _, m := range f.Members {
			if other, ok := seen[m.Code]; ok {
				t.Errorf("%s: %s und %s teilen Code %d", f.Name, other, m.Name, m.Code)
			}
			seen[m.Code] = m.Name
		}
	}
}

// TestAllKindsBuild baut jeden registrierten Kind mit allen gueltigen Selektoren.
func TestAllKindsBuild(t *testing.T) {
	kinds := daal.Kinds()
	require.NotEmpty(t, kinds)

	for _, info := range kinds {
		t.Run(string(info.Name), func(t *testing.T) {
			tbl := native.NewTable(0)
			ctx, err := daal.NewContext(tbl)
			require.NoError(t, err)
			defer ctx.Close()

			if !info.Selectors() {
				p, err := info.Build(ctx, daal.DoublePrecision, 0)
				require.NoError(t, err)
				assert.False(t, p.Handle().IsZero())
				return
			}

			for _, prec := range info.Precisions {
				for _, method := range info.MethodCodes() {
					p, err := info.Build(ctx, prec, method)
					require.NoError(t, err)
					assert.False(t, p.Handle().IsZero())

					if cl, ok := p.(daal.CompanionLister); ok {
						comps, err := cl.Companions()
						require.NoError(t, err)
						for _, c := range comps {
							assert.False(t, c.Handle.IsZero(), c.Name)
						}
					}
				}
			}

			// Ungueltige Methode: keine weitere Anforderung
			before := tbl.Acquisitions()
			_, err = info.Build(ctx, daal.DoublePrecision, 99)
			assert.ErrorIs(t, err, daal.ErrMethodUnsupported)
			assert.Equal(t, before, tbl.Acquisitions())
		})
	}
}
