// MODUL: qualitymetricset
// ZWECK: Gemeinsame Basis fuer Qualitaetsmetrik-Sets, die mehrere Metriken in einem Lauf berechnen
// INPUT: Context, nativer Klassenname des konkreten Sets, Konstruktor-Argumente
// OUTPUT: Batch mit Compute und Parameter
// NEBENEFFEKTE: Compute fuehrt die native Berechnung aus
// ABHAENGIGKEITEN: daal, native
// HINWEISE: Konkrete Sets (z.B. logitboost) betten Batch ein; Berechnungsfehler kommen unveraendert zurueck

package qualitymetricset

import (
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// Batch ist ein Qualitaetsmetrik-Set im Batch-Modus.
type Batch struct {
	*daal.Algorithm[daal.NoMethod]
}

// NewBatch konstruiert das Set kind; args gehen an den nativen Konstruktor.
func NewBatch(ctx *daal.Context, kind native.Kind, args ...int64) (*Batch, error) {
	alg, err := daal.NewBareAlgorithm(ctx, kind, args...)
	if err != nil {
		return nil, err
	}
	return &Batch{alg}, nil
}

// Parameter gibt das Handle der Set-Parameter zurueck.
func (b *Batch) Parameter() (native.Handle, error) {
	return b.Component(native.ComponentParameter)
}

// Companions implementiert daal.CompanionLister.
func (b *Batch) Companions() ([]daal.Companion, error) {
	par, err := b.Parameter()
	if err != nil {
		return nil, err
	}
	return []daal.Companion{{Name: "parameter", Handle: par}}, nil
}
