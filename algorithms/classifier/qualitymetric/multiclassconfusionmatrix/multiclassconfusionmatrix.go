// Package multiclassconfusionmatrix bindet das Input der Konfusionsmatrix
// fuer Klassifikatoren mit mehreren Klassen.
package multiclassconfusionmatrix

import (
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// KindInput ist der native Klassenname des Inputs.
const KindInput native.Kind = "classifier.quality_metric.multiclass_confusion_matrix.Input"

// InputID adressiert die Label-Tabellen.
type InputID int

const (
	PredictedLabels InputID = iota
	GroundTruthLabels
)

var inputIDs = daal.RegisterFamily("classifier/qualitymetric/multiclassconfusionmatrix.InputID",
	daal.Member{Name: "PredictedLabels", Code: int(PredictedLabels)},
	daal.Member{Name: "GroundTruthLabels", Code: int(GroundTruthLabels)})

func (id InputID) Value() int     { return int(id) }
func (id InputID) String() string { return inputIDs.NameOf(int(id)) }

// Input ist das Input der Konfusionsmatrix.
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

// Input liest die Label-Tabelle zu id; andere Codes erreichen die native Seite nicht.
func (in *Input) Input(id InputID) (native.Handle, error) {
	if err := inputIDs.Check(int(id)); err != nil {
		return 0, err
	}
	return in.Value(int(id))
}

// SetInput setzt die Label-Tabelle zu id.
func (in *Input) SetInput(id InputID, table native.Handle) error {
	if err := inputIDs.Check(int(id)); err != nil {
		return err
	}
	return in.SetValue(int(id), table)
}

func init() {
	daal.RegisterKind(daal.KindInfo{
		Name:    KindInput,
		Package: "classifier/qualitymetric/multiclassconfusionmatrix",
		Build:   daal.ArgumentBuilder(NewInput),
	})
}
