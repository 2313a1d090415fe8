// Package prediction bindet das Vorhersage-Ergebnis der Lasso-Regression.
package prediction

import (
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// KindResult ist der native Klassenname des Ergebnisses.
const KindResult native.Kind = "lasso_regression.prediction.Result"

// ResultID adressiert die Ergebnis-Tabellen.
type ResultID int

const (
	Prediction ResultID = 0
)

var resultIDs = daal.RegisterFamily("lassoregression/prediction.ResultID",
	daal.Member{Name: "Prediction", Code: int(Prediction)})

func (id ResultID) Value() int     { return int(id) }
func (id ResultID) String() string { return resultIDs.NameOf(int(id)) }

// Result ist das Vorhersage-Ergebnis.
type Result struct {
	daal.Object
}

// NewResult erzeugt ein leeres natives Ergebnis.
func NewResult(ctx *daal.Context) (*Result, error) {
	obj, err := daal.NewResultObject(ctx, KindResult)
	if err != nil {
		return nil, err
	}
	return &Result{obj}, nil
}

// Result liest die Tabelle zu id.
func (r *Result) Result(id ResultID) (native.Handle, error) {
	return r.Value(int(id))
}

// SetResult setzt die Tabelle zu id.
func (r *Result) SetResult(id ResultID, table native.Handle) error {
	return r.SetValue(int(id), table)
}

func init() {
	daal.RegisterKind(daal.KindInfo{
		Name:    KindResult,
		Package: "lassoregression/prediction",
		Build:   daal.ArgumentBuilder(NewResult),
	})
}
