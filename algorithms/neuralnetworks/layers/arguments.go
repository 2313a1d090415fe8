package layers

import (
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// Kinds der gemeinsamen Argument-Objekte; layer-spezifische Pakete verwenden eigene Kinds.
const (
	KindForwardInput   native.Kind = "neural_networks.layers.forward.Input"
	KindForwardResult  native.Kind = "neural_networks.layers.forward.Result"
	KindBackwardInput  native.Kind = "neural_networks.layers.backward.Input"
	KindBackwardResult native.Kind = "neural_networks.layers.backward.Result"
)

// ForwardInput haelt die Eingaben eines Forward-Layers.
type ForwardInput struct {
	daal.Object
}

func (in ForwardInput) Get(id ForwardInputID) (native.Handle, error) {
	return in.Object.Value(int(id))
}

func (in ForwardInput) Set(id ForwardInputID, value native.Handle) error {
	return in.Object.SetValue(int(id), value)
}

// ForwardResult haelt Ergebnis und Daten fuer den Backward-Layer.
type ForwardResult struct {
	daal.Object
}

// NewForwardResult erzeugt ein leeres natives Ergebnis vom Typ kind.
func NewForwardResult(ctx *daal.Context, kind native.Kind) (ForwardResult, error) {
	obj, err := daal.NewResultObject(ctx, kind)
	return ForwardResult{obj}, err
}

func (r ForwardResult) Get(id ForwardResultID) (native.Handle, error) {
	return r.Object.Value(int(id))
}

func (r ForwardResult) Set(id ForwardResultID, value native.Handle) error {
	return r.Object.SetValue(int(id), value)
}

// LayerData liest die Collection fuer den Backward-Layer.
func (r ForwardResult) LayerData(id ForwardResultLayerDataID) (native.Handle, error) {
	return r.Object.Value(int(id))
}

func (r ForwardResult) SetLayerData(id ForwardResultLayerDataID, value native.Handle) error {
	return r.Object.SetValue(int(id), value)
}

// BackwardInput haelt Gradient und Daten aus dem Forward-Layer.
type BackwardInput struct {
	daal.Object
}

// NewBackwardInput erzeugt eine leere native Eingabe vom Typ kind.
func NewBackwardInput(ctx *daal.Context, kind native.Kind) (BackwardInput, error) {
	obj, err := daal.NewResultObject(ctx, kind)
	return BackwardInput{obj}, err
}

func (in BackwardInput) Get(id BackwardInputID) (native.Handle, error) {
	return in.Object.Value(int(id))
}

func (in BackwardInput) Set(id BackwardInputID, value native.Handle) error {
	return in.Object.SetValue(int(id), value)
}

func (in BackwardInput) LayerData(id BackwardInputLayerDataID) (native.Handle, error) {
	return in.Object.Value(int(id))
}

func (in BackwardInput) SetLayerData(id BackwardInputLayerDataID, value native.Handle) error {
	return in.Object.SetValue(int(id), value)
}

// BackwardResult haelt den Gradienten des Backward-Layers.
type BackwardResult struct {
	daal.Object
}

// NewBackwardResult erzeugt ein leeres natives Ergebnis vom Typ kind.
func NewBackwardResult(ctx *daal.Context, kind native.Kind) (BackwardResult, error) {
	obj, err := daal.NewResultObject(ctx, kind)
	return BackwardResult{obj}, err
}

func (r BackwardResult) Get(id BackwardResultID) (native.Handle, error) {
	return r.Object.Value(int(id))
}

func (r BackwardResult) Set(id BackwardResultID, value native.Handle) error {
	return r.Object.SetValue(int(id), value)
}
