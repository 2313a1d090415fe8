// MODUL: batch
// ZWECK: Generischer Layer-Proxy mit Forward- und Backward-Companion
// INPUT: Context, Precision, layer-spezifische Methode, Kind
// OUTPUT: Batch mit gebundenem Handle und beiden Companions
// NEBENEFFEKTE: Drei native Handles pro Layer (Layer, Forward, Backward)
// ABHAENGIGKEITEN: daal, native
// HINWEISE: Companions teilen Context und Selektoren mit dem Layer

package layers

import (
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// ForwardLayer ist der Forward-Teil eines Layers.
type ForwardLayer struct {
	daal.Object
}

// BackwardLayer ist der Backward-Teil eines Layers.
type BackwardLayer struct {
	daal.Object
}

// Batch ist ein konfigurierter Layer mit Forward- und Backward-Companion.
type Batch[M ~int] struct {
	*daal.Algorithm[M]

	forward  ForwardLayer
	backward BackwardLayer
}

// NewBatch validiert die Selektoren, initialisiert den Layer und holt beide Companions.
func NewBatch[M ~int](ctx *daal.Context, kind native.Kind, prec daal.Precision, method M, supported []M, args ...int64) (*Batch[M], error) {
	alg, err := daal.NewAlgorithm(ctx, kind, prec, method, supported, args...)
	if err != nil {
		return nil, err
	}

	fwd, err := alg.Component(native.ComponentForward)
	if err != nil {
		return nil, err
	}
	bwd, err := alg.Component(native.ComponentBackward)
	if err != nil {
		return nil, err
	}

	return &Batch[M]{
		Algorithm: alg,
		forward:   ForwardLayer{daal.NewObject(ctx, kind+".forward", fwd)},
		backward:  BackwardLayer{daal.NewObject(ctx, kind+".backward", bwd)},
	}, nil
}

// Forward gibt den Forward-Layer zurueck.
func (b *Batch[M]) Forward() ForwardLayer {
	return b.forward
}

// Backward gibt den Backward-Layer zurueck.
func (b *Batch[M]) Backward() BackwardLayer {
	return b.backward
}

// Companions listet Forward- und Backward-Handle.
func (b *Batch[M]) Companions() ([]daal.Companion, error) {
	return []daal.Companion{
		{Name: "forward", Handle: b.forward.Handle()},
		{Name: "backward", Handle: b.backward.Handle()},
	}, nil
}
