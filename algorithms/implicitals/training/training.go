// MODUL: training
// ZWECK: Binding fuer das Teilergebnis von Schritt 3 des verteilten Implicit-ALS-Trainings
// INPUT: Context, DistributedPartialResultStep3ID
// OUTPUT: Handles der Key-Value-Data-Collections
// NEBENEFFEKTE: Native Aufrufe im Context
// ABHAENGIGKEITEN: daal, native
// HINWEISE: Codes werden unveraendert weitergereicht

package training

import (
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// KindPartialResultStep3 ist der native Klassenname des Teilergebnisses.
const KindPartialResultStep3 native.Kind = "implicit_als.training.DistributedPartialResultStep3"

// DistributedPartialResultStep3ID adressiert die Collections des Teilergebnisses.
type DistributedPartialResultStep3ID int

const (
	OutputOfStep3ForStep4 DistributedPartialResultStep3ID = 0
)

var step3IDs = daal.RegisterFamily("implicitals/training.DistributedPartialResultStep3ID",
	daal.Member{Name: "OutputOfStep3ForStep4", Code: int(OutputOfStep3ForStep4)})

func (id DistributedPartialResultStep3ID) Value() int     { return int(id) }
func (id DistributedPartialResultStep3ID) String() string { return step3IDs.NameOf(int(id)) }

// DistributedPartialResultStep3 ist das Teilergebnis von Schritt 3.
type DistributedPartialResultStep3 struct {
	daal.Object
}

// NewDistributedPartialResultStep3 erzeugt ein leeres natives Teilergebnis.
func NewDistributedPartialResultStep3(ctx *daal.Context) (*DistributedPartialResultStep3, error) {
	obj, err := daal.NewResultObject(ctx, KindPartialResultStep3)
	if err != nil {
		return nil, err
	}
	return &DistributedPartialResultStep3{obj}, nil
}

// DataCollection liest die Key-Value-Collection zu id.
func (r *DistributedPartialResultStep3) DataCollection(id DistributedPartialResultStep3ID) (native.Handle, error) {
	return r.Value(int(id))
}

// SetDataCollection setzt die Key-Value-Collection zu id.
func (r *DistributedPartialResultStep3) SetDataCollection(id DistributedPartialResultStep3ID, value native.Handle) error {
	return r.SetValue(int(id), value)
}

func init() {
	daal.RegisterKind(daal.KindInfo{
		Name:    KindPartialResultStep3,
		Package: "implicitals/training",
		Build:   daal.ArgumentBuilder(NewDistributedPartialResultStep3),
	})
}
