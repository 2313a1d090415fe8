// MODUL: ids
// ZWECK: Gemeinsame Identifier-Familien aller Neural-Network-Layer
// INPUT: Keine
// OUTPUT: Geschlossene int-Typen mit benannten Konstanten
// NEBENEFFEKTE: Registriert die Familien beim Laden im daal-Katalog
// ABHAENGIGKEITEN: daal
// HINWEISE: Layer-spezifische Hilfsdaten beginnen bei LastInputLayout + 1

package layers

import "github.com/7blacky7/godaal/daal"

// ForwardInputID adressiert Eingaben des Forward-Layers.
type ForwardInputID int

const (
	Data ForwardInputID = 0
)

// ForwardResultID adressiert Ergebnisse des Forward-Layers.
type ForwardResultID int

const (
	Value ForwardResultID = 0
)

// ForwardResultLayerDataID adressiert die Daten, die der Forward-Layer fuer den Backward-Layer ablegt.
type ForwardResultLayerDataID int

const (
	ResultForBackward ForwardResultLayerDataID = 1
)

// BackwardInputID adressiert Eingaben des Backward-Layers.
type BackwardInputID int

const (
	InputGradient BackwardInputID = 0
)

// BackwardInputLayerDataID adressiert die vom Forward-Layer uebernommenen Daten.
type BackwardInputLayerDataID int

const (
	InputFromForward BackwardInputLayerDataID = 1
)

// BackwardResultID adressiert Ergebnisse des Backward-Layers.
type BackwardResultID int

const (
	Gradient BackwardResultID = 0
)

// InputLayout beschreibt ob ein Layer einen Tensor oder eine Collection erwartet.
type InputLayout int

const (
	TensorInput InputLayout = iota
	CollectionInput
)

// LastInputLayout ist der hoechste InputLayout-Code.
const LastInputLayout = CollectionInput

// FirstAuxID ist der erste Code fuer layer-spezifische Hilfsdaten.
const FirstAuxID = int(LastInputLayout) + 1

// ResultLayout beschreibt ob ein Layer eine Collection oder einen Tensor liefert.
type ResultLayout int

const (
	CollectionResult ResultLayout = iota
	TensorResult
)

var (
	forwardInputIDs = daal.RegisterFamily("neuralnetworks/layers.ForwardInputID",
		daal.Member{Name: "Data", Code: int(Data)})

	forwardResultIDs = daal.RegisterFamily("neuralnetworks/layers.ForwardResultID",
		daal.Member{Name: "Value", Code: int(Value)})

	forwardResultLayerDataIDs = daal.RegisterFamily("neuralnetworks/layers.ForwardResultLayerDataID",
		daal.Member{Name: "ResultForBackward", Code: int(ResultForBackward)})

	backwardInputIDs = daal.RegisterFamily("neuralnetworks/layers.BackwardInputID",
		daal.Member{Name: "InputGradient", Code: int(InputGradient)})

	backwardInputLayerDataIDs = daal.RegisterFamily("neuralnetworks/layers.BackwardInputLayerDataID",
		daal.Member{Name: "InputFromForward", Code: int(InputFromForward)})

	backwardResultIDs = daal.RegisterFamily("neuralnetworks/layers.BackwardResultID",
		daal.Member{Name: "Gradient", Code: int(Gradient)})

	inputLayouts = daal.RegisterFamily("neuralnetworks/layers.InputLayout",
		daal.Member{Name: "TensorInput", Code: int(TensorInput)},
		daal.Member{Name: "CollectionInput", Code: int(CollectionInput)})

	resultLayouts = daal.RegisterFamily("neuralnetworks/layers.ResultLayout",
		daal.Member{Name: "CollectionResult", Code: int(CollectionResult)},
		daal.Member{Name: "TensorResult", Code: int(TensorResult)})
)

func (id ForwardInputID) Value() int     { return int(id) }
func (id ForwardInputID) String() string { return forwardInputIDs.NameOf(int(id)) }

func (id ForwardResultID) Value() int     { return int(id) }
func (id ForwardResultID) String() string { return forwardResultIDs.NameOf(int(id)) }

func (id ForwardResultLayerDataID) Value() int     { return int(id) }
func (id ForwardResultLayerDataID) String() string { return forwardResultLayerDataIDs.NameOf(int(id)) }

func (id BackwardInputID) Value() int     { return int(id) }
func (id BackwardInputID) String() string { return backwardInputIDs.NameOf(int(id)) }

func (id BackwardInputLayerDataID) Value() int     { return int(id) }
func (id BackwardInputLayerDataID) String() string { return backwardInputLayerDataIDs.NameOf(int(id)) }

func (id BackwardResultID) Value() int     { return int(id) }
func (id BackwardResultID) String() string { return backwardResultIDs.NameOf(int(id)) }

func (l InputLayout) Value() int     { return int(l) }
func (l InputLayout) String() string { return inputLayouts.NameOf(int(l)) }

func (l ResultLayout) Value() int     { return int(l) }
func (l ResultLayout) String() string { return resultLayouts.NameOf(int(l)) }
