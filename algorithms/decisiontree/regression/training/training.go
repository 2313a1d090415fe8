// MODUL: training
// ZWECK: Binding fuer das Trainings-Input der Entscheidungsbaum-Regression
// INPUT: Context, InputID, NumericTable-Handles
// OUTPUT: Input-Proxy mit Tabellen und abgeleiteten Dimensionen
// NEBENEFFEKTE: Native Aufrufe im Context
// ABHAENGIGKEITEN: daal, native
// HINWEISE: Die Dimensionen berechnet die native Seite aus den gesetzten Tabellen

package training

import (
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// KindInput ist der native Klassenname des Trainings-Inputs.
const KindInput native.Kind = "decision_tree.regression.training.Input"

// Skalare des Inputs, nur lesbar
const (
	scalarNumberOfFeatures = iota
	scalarNumberOfDependentVariables
)

// InputID adressiert die Eingabetabellen.
type InputID int

const (
	Data InputID = iota
	DependentVariables
)

var inputIDs = daal.RegisterFamily("decisiontree/regression/training.InputID",
	daal.Member{Name: "Data", Code: int(Data)},
	daal.Member{Name: "DependentVariables", Code: int(DependentVariables)})

func (id InputID) Value() int     { return int(id) }
func (id InputID) String() string { return inputIDs.NameOf(int(id)) }

// Input ist das Trainings-Input.
type Input struct {
	daal.Object
}

// NewInput erzeugt ein leeres natives Input.
func NewInput(ctx *daal.Context) (*Input, error) {
	obj, err := daal.NewResultObject(ctx, KindInput)
	if err != nil {
		return nil, err
	}
	return &Input{obj}, nil
}

// Input liest die Tabelle zu id.
func (in *Input) Input(id InputID) (native.Handle, error) {
	return in.Value(int(id))
}

// SetInput setzt die Tabelle zu id.
func (in *Input) SetInput(id InputID, table native.Handle) error {
	return in.SetValue(int(id), table)
}

// NumberOfFeatures gibt die Spaltenzahl der Data-Tabelle zurueck.
func (in *Input) NumberOfFeatures() (int64, error) {
	return in.Scalar(scalarNumberOfFeatures)
}

// NumberOfDependentVariables gibt die Spaltenzahl der DependentVariables-Tabelle zurueck.
func (in *Input) NumberOfDependentVariables() (int64, error) {
	return in.Scalar(scalarNumberOfDependentVariables)
}

func init() {
	daal.RegisterKind(daal.KindInfo{
		Name:    KindInput,
		Package: "decisiontree/regression/training",
		Build:   daal.ArgumentBuilder(NewInput),
	})
}
