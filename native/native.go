// MODUL: native
// ZWECK: Schnittstelle zur externen nativen Rechenbibliothek (opake Handles)
// INPUT: Validierte Integer-Codes (Precision, Method, Identifier), Kind-Namen
// OUTPUT: Opake Handles, die unveraendert weitergereicht werden
// NEBENEFFEKTE: Keine in diesem File (nur Typen)
// ABHAENGIGKEITEN: Keine externen
// HINWEISE: Handles gehoeren der nativen Seite; Go gibt sie nie selbst frei

package native

import (
	"errors"
	"strconv"
)

// ============================================================================
// Handle / Kind / Component
// ============================================================================

// Handle ist ein opakes Token fuer ein Objekt der nativen Bibliothek.
// Null ist nie ein gueltiges Handle.
type Handle uintptr

// IsZero prueft ob das Handle leer ist.
func (h Handle) IsZero() bool {
	return h == 0
}

func (h Handle) String() string {
	return "0x" + strconv.FormatUint(uint64(h), 16)
}

// Kind benennt die native Klasse, z.B. "neural_networks.layers.elu.Batch".
type Kind string

// Component waehlt ein Unterobjekt eines bereits erzeugten Handles.
type Component int

const (
	ComponentForward Component = iota + 1
	ComponentBackward
	ComponentParameter
	ComponentInput
	ComponentResult
	ComponentClone
)

var componentNames = map[Component]string{
	ComponentForward:   "forward",
	ComponentBackward:  "backward",
	ComponentParameter: "parameter",
	ComponentInput:     "input",
	ComponentResult:    "result",
	ComponentClone:     "clone",
}

func (c Component) String() string {
	if s, ok := componentNames[c]; ok {
		return s
	}
	return "component(" + strconv.Itoa(int(c)) + ")"
}

// ============================================================================
// Library Interface
// ============================================================================

// Library ist die Faehigkeit, die die native Bibliothek bereitstellt.
// Alle Codes werden unveraendert durchgereicht; Fehler der nativen
// Seite werden nicht uebersetzt.
type Library interface {
	// NewContext erzeugt einen nativen Scope fuer Handles
	NewContext() (Handle, error)

	// DisposeContext gibt alle Handles des Scopes auf nativer Seite frei
	DisposeContext(ctx Handle) error

	// Init erzeugt ein Algorithmus- oder Layer-Objekt
	Init(ctx Handle, kind Kind, prec, method int, args ...int64) (Handle, error)

	// Get liefert ein Unterobjekt (Forward/Backward-Layer, Parameter, Result, Clone)
	Get(ctx Handle, kind Kind, comp Component, parent Handle, prec, method int) (Handle, error)

	// Set ersetzt ein Unterobjekt (z.B. das Result eines Algorithmus)
	Set(kind Kind, comp Component, parent Handle, prec, method int, value Handle) error

	// NewResult erzeugt ein leeres Result-/Input-Objekt
	NewResult(ctx Handle, kind Kind) (Handle, error)

	// GetValue liest das per Identifier adressierte Teilobjekt; 0 = nicht gesetzt
	GetValue(kind Kind, obj Handle, id int) (Handle, error)

	// SetValue setzt das per Identifier adressierte Teilobjekt
	SetValue(kind Kind, obj Handle, id int, value Handle) error

	// GetScalar liest einen skalaren Wert (z.B. Anzahl Komponenten)
	GetScalar(kind Kind, obj Handle, id int) (int64, error)

	// SetScalar setzt einen skalaren Wert
	SetScalar(kind Kind, obj Handle, id int, value int64) error

	// Compute fuehrt den Algorithmus aus; Fehler der Berechnung kommen unveraendert zurueck
	Compute(kind Kind, alg Handle, prec, method int) error

	// Version gibt die semantische Version der Bibliothek zurueck ("v1.2.3")
	Version() string
}

// ============================================================================
// Fehler
// ============================================================================

var (
	// ErrNullHandle wird zurueckgegeben wenn die native Seite kein Objekt liefert
	ErrNullHandle = errors.New("native: null handle")

	// ErrUnknownHandle wird zurueckgegeben fuer Handles, die die Bibliothek nicht kennt
	ErrUnknownHandle = errors.New("native: unknown handle")

	// ErrHandleLimit wird zurueckgegeben wenn ein Context keine Handles mehr vergeben darf
	ErrHandleLimit = errors.New("native: handle limit reached")

	// ErrCodeRange wird zurueckgegeben wenn ein Code nicht in int32 der Shim-ABI passt
	ErrCodeRange = errors.New("native: code out of int32 range")
)

// LibraryError beschreibt einen Fehler beim Laden oder Aufrufen der Bibliothek.
type LibraryError struct {
	Op   string // Operation (z.B. "load", "symbol", "init")
	Name string // Bibliothek, Symbol oder Kind
	Err  error
}

// Error implementiert das error Interface.
func (e *LibraryError) Error() string {
	return "native: " + e.Op + " " + e.Name + ": " + e.Err.Error()
}

// Unwrap gibt den urspruenglichen Fehler zurueck.
func (e *LibraryError) Unwrap() error {
	return e.Err
}
