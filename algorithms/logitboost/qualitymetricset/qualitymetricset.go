// Package qualitymetricset bindet das Qualitaetsmetrik-Set fuer LogitBoost.
package qualitymetricset

import (
	"github.com/7blacky7/godaal/algorithms/qualitymetricset"
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// Kind ist der native Klassenname des Sets.
const Kind native.Kind = "logitboost.quality_metric_set.Batch"

// DefaultClasses wird verwendet wenn Werkzeuge das Set ohne Klassenzahl bauen.
const DefaultClasses = 2

// Batch ist das LogitBoost-Metrik-Set fuer nClasses Klassen.
type Batch struct {
	*qualitymetricset.Batch
	nClasses int64
}

// NewBatch konstruiert das Set; nClasses geht an den nativen Konstruktor.
func NewBatch(ctx *daal.Context, nClasses int64) (*Batch, error) {
	b, err := qualitymetricset.NewBatch(ctx, Kind, nClasses)
	if err != nil {
		return nil, err
	}
	return &Batch{Batch: b, nClasses: nClasses}, nil
}

// NumberOfClasses gibt die Klassenzahl der Konstruktion zurueck.
func (b *Batch) NumberOfClasses() int64 { return b.nClasses }

func init() {
	daal.RegisterKind(daal.KindInfo{
		Name:    Kind,
		Package: "logitboost/qualitymetricset",
		Build: daal.ArgumentBuilder(func(ctx *daal.Context) (*Batch, error) {
			return NewBatch(ctx, DefaultClasses)
		}),
	})
}
