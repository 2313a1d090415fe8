// MODUL: errors
// ZWECK: Fehlerwerte der Binding-Schicht
// INPUT: Keine
// OUTPUT: Sentinel-Fehler und typisierte Fehler mit Unwrap
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: errors, strconv (stdlib)
// HINWEISE: Nur Konfigurationsfehler werden lokal erkannt; alles andere kommt von der nativen Seite

package daal

import (
	"errors"
	"strconv"
)

// ============================================================================
// Sentinel-Fehler
// ============================================================================

var (
	// ErrTypeUnsupported wird bei einer nicht unterstuetzten Precision zurueckgegeben
	ErrTypeUnsupported = errors.New("type unsupported")

	// ErrMethodUnsupported wird bei einer nicht unterstuetzten Methode zurueckgegeben
	ErrMethodUnsupported = errors.New("method unsupported")

	// ErrContextClosed wird zurueckgegeben wenn der Context bereits geschlossen ist
	ErrContextClosed = errors.New("daal: context closed")

	// ErrUnsupportedID wird fuer Identifier ausserhalb der dokumentierten Familie zurueckgegeben
	ErrUnsupportedID = errors.New("daal: unsupported identifier")

	// ErrNotFound wird bei unbekannten Familien oder Kinds zurueckgegeben
	ErrNotFound = errors.New("daal: not found")
)

// ============================================================================
// ConfigError
// ============================================================================

// ConfigError beschreibt eine abgelehnte Konstruktion.
type ConfigError struct {
	Op    string // Kind oder Operation, z.B. "neural_networks.layers.elu.Batch"
	Arg   string // "precision" oder "method"
	Value int    // Abgelehnter Code
	Err   error  // ErrTypeUnsupported oder ErrMethodUnsupported
}

// Error implementiert das error Interface.
func (e *ConfigError) Error() string {
	return "daal: " + e.Op + ": " + e.Arg + " " + strconv.Itoa(e.Value) + ": " + e.Err.Error()
}

// Unwrap gibt den urspruenglichen Fehler zurueck.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ============================================================================
// LookupError
// ============================================================================

// LookupError wird fuer unbekannte Namen in den Katalogen zurueckgegeben.
type LookupError struct {
	What       string // "family" oder "kind"
	Name       string
	Suggestion string // naechster bekannter Name, falls aehnlich genug
}

// Error implementiert das error Interface.
func (e *LookupError) Error() string {
	s := "daal: unknown " + e.What + " " + strconv.Quote(e.Name)
	if e.Suggestion != "" {
		s += ", did you mean " + strconv.Quote(e.Suggestion) + "?"
	}
	return s
}

// Unwrap gibt ErrNotFound zurueck.
func (e *LookupError) Unwrap() error {
	return ErrNotFound
}
