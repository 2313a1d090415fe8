// Package training enthaelt die Identifier des verteilten Trainings fuer
// Gradient-Boosted-Trees-Regression.
package training

import "github.com/7blacky7/godaal/daal"

// DistributedPartialResultStep6ID adressiert das Teilergebnis von Schritt 6.
type DistributedPartialResultStep6ID int

const (
	PartialModel DistributedPartialResultStep6ID = 0
)

var step6IDs = daal.RegisterFamily("gbt/regression/training.DistributedPartialResultStep6ID",
	daal.Member{Name: "PartialModel", Code: int(PartialModel)})

func (id DistributedPartialResultStep6ID) Value() int { return int(id) }

func (id DistributedPartialResultStep6ID) String() string {
	return step6IDs.NameOf(int(id))
}
